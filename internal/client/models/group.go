package models

// Join request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// Group is a cooperative-savings group (stokvel) as served by the admin
// group endpoints.
type Group struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Tier               string  `json:"tier"`
	ContributionAmount float64 `json:"contribution_amount"`
	Frequency          string  `json:"frequency"`
	MaxMembers         int     `json:"max_members"`
	MemberCount        int     `json:"member_count"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
}

// GroupMember is a row of a group's member listing.
type GroupMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinedAt string `json:"joined_at"`
}

// JoinRequest is a pending/settled request to join a stokvel tier,
// normalized to client field names (created_at becomes CreatedAt).
type JoinRequest struct {
	ID        int64   `json:"id"`
	User      string  `json:"user"`
	Category  string  `json:"category"`
	Tier      string  `json:"tier"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
	CreatedAt string  `json:"createdAt"`
}
