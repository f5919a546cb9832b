package billing

import (
	"fmt"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// Recipient is a fixed internal business-share stakeholder. The set is a
// business constant, not runtime configuration.
type Recipient string

const (
	// RecipientOwners receives 50% of profit over the billed range.
	RecipientOwners Recipient = "Owners"

	// RecipientOperations receives 50% of profit minus all agent commissions
	// over the billed range (commissions are paid out of this share).
	RecipientOperations Recipient = "Operations"
)

// Validate checks the recipient against the fixed set.
func (r Recipient) Validate() error {
	switch r {
	case RecipientOwners, RecipientOperations:
		return nil
	default:
		return errs.NewValidationError(fmt.Sprintf("%q is not a known internal recipient", string(r)))
	}
}

// SubjectKind discriminates the three billing subject flavors.
type SubjectKind int

const (
	// SubjectUnknown represents an invalid or undefined subject.
	SubjectUnknown SubjectKind = iota

	// SubjectInternal bills a fixed internal recipient.
	SubjectInternal

	// SubjectPartner bills a shipping partner its accrued courier fees.
	SubjectPartner

	// SubjectAgent bills a sales agent its accrued commissions.
	SubjectAgent
)

func getSubjectKindStrings() map[SubjectKind]string {
	return map[SubjectKind]string{
		SubjectInternal: "Internal",
		SubjectPartner:  "Partner",
		SubjectAgent:    "Agent",
	}
}

// SubjectKindFromString parses a subject kind name as read from persistence.
func SubjectKindFromString(s string) (SubjectKind, error) {
	for kind, name := range getSubjectKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return SubjectUnknown, errs.NewValidationError(fmt.Sprintf("%q is not a valid billing subject kind", s))
}

// String returns the persisted name of the subject kind.
func (k SubjectKind) String() string {
	if name, ok := getSubjectKindStrings()[k]; ok {
		return name
	}
	return "Unknown"
}

// Subject identifies who an invoice is for. Exactly one of the recipient tag
// or an entity identifier is set, matching the subject kind.
//
// The zero value is invalid; construct via SubjectForRecipient,
// SubjectForPartner, or SubjectForAgent.
type Subject struct {
	kind      SubjectKind
	recipient Recipient
	entityID  kernel.UUID

	isConstructed bool
}

// SubjectForRecipient creates an internal business-share subject.
func SubjectForRecipient(r Recipient) (Subject, error) {
	if err := r.Validate(); err != nil {
		return Subject{}, err
	}
	return Subject{kind: SubjectInternal, recipient: r, isConstructed: true}, nil
}

// SubjectForPartner creates a subject billing the given partner.
func SubjectForPartner(partnerID kernel.UUID) (Subject, error) {
	if err := partnerID.Validate(); err != nil {
		return Subject{}, err
	}
	return Subject{kind: SubjectPartner, entityID: partnerID, isConstructed: true}, nil
}

// SubjectForAgent creates a subject billing the given sales agent.
func SubjectForAgent(agentID kernel.UUID) (Subject, error) {
	if err := agentID.Validate(); err != nil {
		return Subject{}, err
	}
	return Subject{kind: SubjectAgent, entityID: agentID, isConstructed: true}, nil
}

// Validate ensures the subject was created via a constructor.
func (s Subject) Validate() error {
	if !s.isConstructed {
		return errs.NewValidationError("billing subject must be created via its constructor")
	}
	return nil
}

// Kind returns the subject flavor.
func (s Subject) Kind() SubjectKind {
	return s.kind
}

// Recipient returns the internal recipient tag; meaningful only for
// SubjectInternal subjects.
func (s Subject) Recipient() Recipient {
	return s.recipient
}

// EntityID returns the billed partner or agent identifier; meaningful only
// for SubjectPartner and SubjectAgent subjects.
func (s Subject) EntityID() kernel.UUID {
	return s.entityID
}

// String renders the subject for explanations and logs.
func (s Subject) String() string {
	switch s.kind {
	case SubjectInternal:
		return fmt.Sprintf("internal recipient %s", s.recipient)
	case SubjectPartner:
		return fmt.Sprintf("partner %s", s.entityID)
	case SubjectAgent:
		return fmt.Sprintf("sales agent %s", s.entityID)
	default:
		return "unknown subject"
	}
}
