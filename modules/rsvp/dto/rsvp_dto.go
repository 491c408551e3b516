package dto

import "wedding-api/modules/rsvp/entity"

type FamilyMemberDTO struct {
	MemberID   string `json:"memberId,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	RSVPStatus string `json:"rsvpStatus,omitempty"`
}

type SubmitRSVPRequest struct {
	FamilyMembers []FamilyMemberDTO `json:"familyMembers"`
}

type DeleteFamilyMemberRequest struct {
	FamilyMember FamilyMemberDTO `json:"familyMember"`
}

type RSVPResponse struct {
	Record *entity.RSVPRecord `json:"record"`
}

type CheckRSVPResponse struct {
	HasSubmittedRSVP bool `json:"hasSubmittedRSVP"`
}

func (d FamilyMemberDTO) ToEntity() entity.FamilyMember {
	return entity.FamilyMember{
		MemberID:   d.MemberID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		RSVPStatus: d.RSVPStatus,
	}
}

func ToMembers(dtos []FamilyMemberDTO) []entity.FamilyMember {
	members := make([]entity.FamilyMember, 0, len(dtos))
	for _, d := range dtos {
		members = append(members, d.ToEntity())
	}
	return members
}
