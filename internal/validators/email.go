// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/MKhiriev/go-appointment-intake/models"
)

const (
	FieldPatientEmail = models.KeyPatientEmail

	emailMinLength     = 3
	emailMaxLength     = 100
	localPartMaxLength = 64
	domainLabelMaxLen  = 63
	tldMinLength       = 2
)

const (
	MsgEmailRequired          = "Email is required"
	MsgEmailNotString         = "Email must be a string"
	MsgEmailEmpty             = "Email must not be empty"
	MsgEmailTooShort          = "Email is too short"
	MsgEmailTooLong           = "Email must be at most 100 characters"
	MsgEmailInjection         = "Email contains invalid characters"
	MsgEmailNoAt              = "Email must contain a single @ character"
	MsgEmailMissingPart       = "Email must have both local part and domain"
	MsgLocalPartTooLong       = "Local part is too long"
	MsgLocalPartEdgeDot       = "Local part must not start or end with a dot"
	MsgLocalPartDoubleDot     = "Local part must not contain consecutive dots"
	MsgLocalPartInvalidChars  = "Local part contains invalid characters"
	MsgDomainNoTLD            = "Domain must contain a top-level domain (e.g., example.com)"
	MsgDomainInvalidChars     = "Domain contains invalid characters"
	MsgDomainEdgeDot          = "Domain must not start or end with a dot"
	MsgDomainDoubleDot        = "Domain must not contain consecutive dots"
	MsgTLDInvalid             = "Top-level domain is invalid"
	MsgDomainLabelLength      = "Domain label has invalid length"
	MsgDomainInvalidStructure = "Domain contains invalid characters or structure"
)

// emailParts is an address split on its last '@'. domain holds the Unicode
// form before IDNA conversion and the ASCII form after it.
type emailParts struct {
	local  string
	domain string
}

// EmailValidator validates the patient email against a deliberately
// restrictive subset of RFC 5322 addresses.
//
// The pipeline has four stages: whole-value rules, split into local part and
// domain, IDNA conversion of the domain, and rules over the ASCII domain.
type EmailValidator struct {
	presence chain[models.Field]
	whole    chain[string]
	parts    chain[emailParts]
	ascii    chain[emailParts]
	profile  *idna.Profile
}

// NewEmailValidator constructs an EmailValidator.
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{
		presence: presenceRules(MsgEmailRequired, MsgEmailNotString),
		whole: chain[string]{
			{name: "not_empty", kind: ErrEmptyValue, message: MsgEmailEmpty,
				ok: func(s string) bool { return s != "" }},
			{name: "min_length", kind: ErrLengthViolation, message: MsgEmailTooShort,
				ok: func(s string) bool { return utf8.RuneCountInString(s) >= emailMinLength }},
			{name: "max_length", kind: ErrLengthViolation, message: MsgEmailTooLong,
				ok: func(s string) bool { return utf8.RuneCountInString(s) <= emailMaxLength }},
			{name: "injection", kind: ErrInjectionSignature, message: MsgEmailInjection,
				ok: func(s string) bool { return !sqlXSSPattern.MatchString(s) }},
			{name: "has_at", kind: ErrStructuralViolation, message: MsgEmailNoAt,
				ok: func(s string) bool { return strings.Contains(s, "@") }},
		},
		parts: chain[emailParts]{
			{name: "both_parts", kind: ErrStructuralViolation, message: MsgEmailMissingPart,
				ok: func(p emailParts) bool { return p.local != "" && p.domain != "" }},
			{name: "local_length", kind: ErrLengthViolation, message: MsgLocalPartTooLong,
				ok: func(p emailParts) bool { return utf8.RuneCountInString(p.local) <= localPartMaxLength }},
			{name: "local_edge_dot", kind: ErrStructuralViolation, message: MsgLocalPartEdgeDot,
				ok: func(p emailParts) bool { return !hasEdgeDot(p.local) }},
			{name: "local_double_dot", kind: ErrStructuralViolation, message: MsgLocalPartDoubleDot,
				ok: func(p emailParts) bool { return !strings.Contains(p.local, "..") }},
			{name: "local_atom", kind: ErrCharacterSetViolation, message: MsgLocalPartInvalidChars,
				ok: func(p emailParts) bool { return localPartAtomPattern.MatchString(p.local) }},
			{name: "domain_has_tld", kind: ErrStructuralViolation, message: MsgDomainNoTLD,
				ok: func(p emailParts) bool { return strings.Contains(models.TrimSpace(p.domain), ".") }},
		},
		ascii: chain[emailParts]{
			{name: "domain_edge_dot", kind: ErrStructuralViolation, message: MsgDomainEdgeDot,
				ok: func(p emailParts) bool { return !hasEdgeDot(p.domain) }},
			{name: "domain_double_dot", kind: ErrStructuralViolation, message: MsgDomainDoubleDot,
				ok: func(p emailParts) bool { return !strings.Contains(p.domain, "..") }},
			{name: "tld_length", kind: ErrStructuralViolation, message: MsgTLDInvalid,
				ok: func(p emailParts) bool { return len(tld(p.domain)) >= tldMinLength }},
			{name: "tld_shape", kind: ErrStructuralViolation, message: MsgTLDInvalid,
				ok: func(p emailParts) bool { return validTLD(tld(p.domain)) }},
			{name: "labels", ok: func(p emailParts) bool { return labelsFailure(p.domain) == nil },
				explain: func(p emailParts) (error, string) {
					f := labelsFailure(p.domain)
					return f.kind, f.message
				}},
			{name: "total_length", kind: ErrLengthViolation, message: MsgEmailTooLong,
				ok: func(p emailParts) bool {
					return utf8.RuneCountInString(p.local)+1+len(p.domain) <= emailMaxLength
				}},
		},
		// Transitional lookup mapping without STD3 or hyphen restrictions;
		// the label rules above own those checks.
		profile: idna.New(
			idna.MapForLookup(),
			idna.Transitional(true),
			idna.StrictDomainName(false),
			idna.CheckHyphens(false),
		),
	}
}

// Validate checks f against the email rules on its trimmed value.
func (v *EmailValidator) Validate(f models.Field) error {
	if err := v.presence.first(FieldPatientEmail, f); err != nil {
		return err
	}

	raw, _ := f.Value()
	email := models.TrimSpace(raw)
	if err := v.whole.first(FieldPatientEmail, email); err != nil {
		return err
	}

	at := strings.LastIndex(email, "@")
	parts := emailParts{local: email[:at], domain: email[at+1:]}
	if err := v.parts.first(FieldPatientEmail, parts); err != nil {
		return err
	}

	asciiDomain, ok := v.toASCII(models.TrimSpace(parts.domain))
	if !ok {
		return reject(FieldPatientEmail, ErrCharacterSetViolation, MsgDomainInvalidChars)
	}
	parts.domain = asciiDomain

	return v.ascii.first(FieldPatientEmail, parts)
}

func (v *EmailValidator) Check(f models.Field) (bool, string) {
	return Result(v.Validate(f))
}

// toASCII converts domain label by label. An ASCII domain is kept as is and
// only its label lengths are checked. Every label but a final empty one (a
// trailing dot) must be 1 to 63 octets once encoded.
func (v *EmailValidator) toASCII(domain string) (string, bool) {
	if isASCII(domain) {
		labels := strings.Split(domain, ".")
		for i, label := range labels {
			if len(label) > domainLabelMaxLen || (label == "" && i < len(labels)-1) {
				return "", false
			}
		}
		return domain, true
	}

	labels := idnaDots.Split(domain, -1)
	trailingDot := ""
	if labels[len(labels)-1] == "" {
		labels, trailingDot = labels[:len(labels)-1], "."
	}

	encoded := make([]string, 0, len(labels))
	for _, label := range labels {
		if !isASCII(label) {
			var err error
			if label, err = v.profile.ToASCII(label); err != nil {
				return "", false
			}
		}
		if label == "" || len(label) > domainLabelMaxLen {
			return "", false
		}
		encoded = append(encoded, label)
	}

	return strings.Join(encoded, ".") + trailingDot, true
}

func hasEdgeDot(s string) bool {
	return strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".")
}

func tld(domain string) string {
	return domain[strings.LastIndex(domain, ".")+1:]
}

// validTLD reports whether label starts with a letter, ends with a letter or
// digit and contains only letters, digits and hyphens.
func validTLD(label string) bool {
	if label == "" || !isASCIILetter(label[0]) || !isASCIIAlnum(label[len(label)-1]) {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isASCIIAlnum(label[i]) && label[i] != '-' {
			return false
		}
	}
	return true
}

type labelFailure struct {
	kind    error
	message string
}

// labelsFailure checks every dot-separated label in order and describes the
// first bad one.
func labelsFailure(domain string) *labelFailure {
	for _, label := range strings.Split(domain, ".") {
		if len(label) == 0 || len(label) > domainLabelMaxLen {
			return &labelFailure{kind: ErrLengthViolation, message: MsgDomainLabelLength}
		}
		if !domainLabelPattern.MatchString(label) {
			return &labelFailure{kind: ErrStructuralViolation, message: MsgDomainInvalidStructure}
		}
	}
	return nil
}
