package entity

import "wedding-api/core/constants"

// RSVPRecord is the single authoritative RSVP document for one family. The
// family name doubles as the primary key; upserts keyed on it guarantee at
// most one record per family.
type RSVPRecord struct {
	FamilyName    string         `bson:"familyName" json:"familyName"`
	FamilyMembers []FamilyMember `bson:"familyMembers" json:"familyMembers"`
}

// FamilyMember keeps client insertion order. MemberID is assigned by the
// server on first submit and is the stable identity for delete/update; the
// name fields are display-only.
type FamilyMember struct {
	MemberID   string `bson:"memberId" json:"memberId"`
	FirstName  string `bson:"firstName" json:"firstName"`
	LastName   string `bson:"lastName" json:"lastName"`
	RSVPStatus string `bson:"rsvpStatus" json:"rsvpStatus"`
}

// Matches reports whether the member is the one named by the selector.
// An ID match wins; the (firstName, lastName) pair is the legacy fallback.
func (m FamilyMember) Matches(sel FamilyMember) bool {
	if sel.MemberID != "" {
		return m.MemberID == sel.MemberID
	}
	return m.FirstName == sel.FirstName && m.LastName == sel.LastName
}

// Normalize applies the default status to members submitted without one.
func (m *FamilyMember) Normalize() {
	switch m.RSVPStatus {
	case constants.StatusGoing, constants.StatusNotGoing, constants.StatusUnknown:
	default:
		m.RSVPStatus = constants.StatusUnknown
	}
}
