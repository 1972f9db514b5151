package domain

// CaseRole is the acting user's role relative to a specific case. An identity
// assigned on the case always classifies as the assigned variant; the generic
// variants apply to users acting on cases they are not assigned to.
type CaseRole string

const (
	RoleGenericCaseworker  CaseRole = "generic-caseworker"
	RoleAssignedCaseworker CaseRole = "assigned-caseworker"
	RoleAssignedCoSigner   CaseRole = "assigned-co-signer"
	RoleGenericReviewer    CaseRole = "generic-reviewer"
	RoleAssignedReviewer   CaseRole = "assigned-reviewer"
)

// CaseStatus is the workflow classification of a case, derived from its
// assignment, finalization and flow states.
type CaseStatus string

const (
	CaseStatusOpen                           CaseStatus = "open"
	CaseStatusWithCaseworker                 CaseStatus = "with-caseworker"
	CaseStatusWithCoSigner                   CaseStatus = "with-co-signer"
	CaseStatusWithReviewer                   CaseStatus = "with-reviewer"
	CaseStatusReturnedByReviewer             CaseStatus = "returned-by-reviewer"
	CaseStatusWithCoSignerAndReviewer        CaseStatus = "with-co-signer-and-reviewer"
	CaseStatusWithCoSignerReturnedByReviewer CaseStatus = "with-co-signer-returned-by-reviewer"
	CaseStatusCompleted                      CaseStatus = "completed"
)

// DocumentType is the policy classification of a document in progress.
type DocumentType string

const (
	DocTypeSmart             DocumentType = "smart-document"
	DocTypeUploaded          DocumentType = "uploaded"
	DocTypeArchived          DocumentType = "archived"
	DocTypeReviewerQuestions DocumentType = "reviewer-questions"
	DocTypeReviewerAnswers   DocumentType = "reviewer-answers"
)

// ParentType is the kind of document a document is attached under, if any.
type ParentType string

const (
	ParentNone              ParentType = "none"
	ParentSmart             ParentType = "smart-document"
	ParentUploaded          ParentType = "uploaded"
	ParentReviewerQuestions ParentType = "reviewer-questions"
)

// CreatorRole is the role that originally created a document, recorded at
// creation time. External/imported documents carry CreatorNone.
type CreatorRole string

const (
	CreatorCaseworker CreatorRole = "caseworker-system"
	CreatorReviewer   CreatorRole = "reviewer-system"
	CreatorCoSigner   CreatorRole = "co-signer-system"
	CreatorNone       CreatorRole = "none"
)

// DocumentAction is an operation attempted on a document in progress.
type DocumentAction string

const (
	ActionCreate     DocumentAction = "create"
	ActionWrite      DocumentAction = "write"
	ActionRemove     DocumentAction = "remove"
	ActionChangeType DocumentAction = "change-type"
	ActionRename     DocumentAction = "rename"
	ActionFinish     DocumentAction = "finish"
)

// Actions lists every document action, in rule-dataset order.
var Actions = []DocumentAction{
	ActionCreate, ActionWrite, ActionRemove, ActionChangeType, ActionRename, ActionFinish,
}

// Outcome is the result classification of a rule-table lookup.
type Outcome string

const (
	OutcomeAllowed Outcome = "allowed"

	// Role mismatches.
	OutcomeNotAssigned      Outcome = "not-assigned"
	OutcomeCaseworkerOnly   Outcome = "caseworker-only"
	OutcomeReviewerOnly     Outcome = "reviewer-only"
	OutcomeCoSignerOnly     Outcome = "co-signer-only"
	OutcomeAssignedRoleOnly Outcome = "assigned-role-only"

	// Case-state mismatches.
	OutcomeCaseOpen               Outcome = "case-open"
	OutcomeCaseCompleted          Outcome = "case-completed"
	OutcomeCaseWithCoSigner       Outcome = "case-with-co-signer"
	OutcomeCaseWithReviewer       Outcome = "case-with-reviewer"
	OutcomeCaseReturnedByReviewer Outcome = "case-returned-by-reviewer"
	OutcomeCaseNotWithReviewer    Outcome = "case-not-with-reviewer"

	// Document-type mismatches.
	OutcomeTypeArchived          Outcome = "type-archived"
	OutcomeTypeUploaded          Outcome = "type-uploaded"
	OutcomeTypeReviewerQuestions Outcome = "type-reviewer-questions"
	OutcomeTypeReviewerAnswers   Outcome = "type-reviewer-answers"
	OutcomeParentMismatch        Outcome = "parent-mismatch"
	OutcomeCreatorMismatch       Outcome = "creator-mismatch"
	OutcomeTypeChangeNotAllowed  Outcome = "type-change-not-allowed"

	// Combinations that should never be reachable in a correctly configured
	// deployment still carry an explicit outcome in the dataset.
	OutcomeNotSupported Outcome = "not-supported"
)

// Outcomes maps every recognized outcome name to its value. The rule store
// rejects dataset rows naming anything outside this map.
var Outcomes = map[string]Outcome{
	string(OutcomeAllowed):                OutcomeAllowed,
	string(OutcomeNotAssigned):            OutcomeNotAssigned,
	string(OutcomeCaseworkerOnly):         OutcomeCaseworkerOnly,
	string(OutcomeReviewerOnly):           OutcomeReviewerOnly,
	string(OutcomeCoSignerOnly):           OutcomeCoSignerOnly,
	string(OutcomeAssignedRoleOnly):       OutcomeAssignedRoleOnly,
	string(OutcomeCaseOpen):               OutcomeCaseOpen,
	string(OutcomeCaseCompleted):          OutcomeCaseCompleted,
	string(OutcomeCaseWithCoSigner):       OutcomeCaseWithCoSigner,
	string(OutcomeCaseWithReviewer):       OutcomeCaseWithReviewer,
	string(OutcomeCaseReturnedByReviewer): OutcomeCaseReturnedByReviewer,
	string(OutcomeCaseNotWithReviewer):    OutcomeCaseNotWithReviewer,
	string(OutcomeTypeArchived):           OutcomeTypeArchived,
	string(OutcomeTypeUploaded):           OutcomeTypeUploaded,
	string(OutcomeTypeReviewerQuestions):  OutcomeTypeReviewerQuestions,
	string(OutcomeTypeReviewerAnswers):    OutcomeTypeReviewerAnswers,
	string(OutcomeParentMismatch):         OutcomeParentMismatch,
	string(OutcomeCreatorMismatch):        OutcomeCreatorMismatch,
	string(OutcomeTypeChangeNotAllowed):   OutcomeTypeChangeNotAllowed,
	string(OutcomeNotSupported):           OutcomeNotSupported,
}

// FlowState tracks whether a case has been handed to the co-signer or reviewer
// and whether it has come back.
type FlowState string

const (
	FlowNotSent  FlowState = "not-sent"
	FlowSent     FlowState = "sent"
	FlowReturned FlowState = "returned"
)

// DocumentKind is the distribution type of a document, changeable through the
// change-type action.
type DocumentKind string

const (
	KindLetter   DocumentKind = "letter"
	KindNote     DocumentKind = "note"
	KindDecision DocumentKind = "decision"
)

// DocumentVariant is the concrete persisted variant of a document. The policy
// DocumentType is derived from it together with the template ID.
type DocumentVariant string

const (
	VariantSmart    DocumentVariant = "smartdokument"
	VariantUploaded DocumentVariant = "opplastet"
	VariantArchived DocumentVariant = "journalfoert"
)

// Smart-document template IDs with special policy classification.
const (
	TemplateReviewerQuestions = "rol-questions"
	TemplateReviewerAnswers   = "rol-answers"
)

// Capability is a role capability a user holds independently of any case.
type Capability string

const (
	CapabilityCaseworker Capability = "caseworker"
	CapabilityReviewer   Capability = "reviewer"
)
