package model

// The chama (group savings) records.  Member.Contributions/Investments and
// Group.Members/Discussions are declared in the stored schema but no
// operation populates them yet; the linkage bookkeeping was never finished
// upstream and is reproduced as-is rather than invented here.

// Member is a chama participant.
type Member struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Contributions []string `json:"contributions"`
	Investments   []string `json:"investments"`
}

// MemberPayload carries the caller-supplied fields for a new member.
// Name and email are required; phone is optional.
type MemberPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MemberUpdate is a partial update of a member's contact details.
type MemberUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Contribution records money a member paid into the chama.  MemberID must
// reference an existing member at creation time.
type Contribution struct {
	ID       string `json:"id"`
	MemberID string `json:"memberId"`
	Amount   uint64 `json:"amount"`
	Date     string `json:"date"`
}

// ContributionPayload carries the caller-supplied fields for a new
// contribution.
type ContributionPayload struct {
	MemberID string `json:"memberId"`
	Amount   uint64 `json:"amount"`
	Date     string `json:"date"`
}

// Investment records a pooled investment made by the chama.  Returns starts
// at zero and is updated as payouts are recorded.
type Investment struct {
	ID         string `json:"id"`
	RecordType string `json:"record_type"`
	Amount     uint64 `json:"amount"`
	Date       string `json:"date"`
	Returns    uint64 `json:"returns"`
}

// InvestmentPayload carries the caller-supplied fields for a new investment.
type InvestmentPayload struct {
	RecordType string `json:"record_type"`
	Amount     uint64 `json:"amount"`
	Date       string `json:"date"`
}

// Group is a named chama.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Discussions []string `json:"discussions"`
}

// GroupPayload carries the caller-supplied fields for a new group.
type GroupPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
