package congregation

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive  = "active"
	StatusVisitor = "visitor"

	MemberTypeAdult = "adult"
	MemberTypeChild = "child"

	FrequencyRegular    = "regular"
	FrequencyOccasional = "occasional"
	FrequencyRare       = "rare"

	EventTypeSundayService = "sunday-service"
	EventTypeBibleStudy    = "bible-study"
	EventTypeFellowship    = "fellowship"

	AttendanceCheckedIn = "checked-in"
	AttendanceAttending = "attending"

	BatchStatusClosed = "closed"

	PaymentMethodCheck = "check"
	PaymentMethodCash  = "cash"
)

type Member struct {
	ID                  string `gorm:"primaryKey"`
	OrganizationID      string `gorm:"not null;index"`
	Firstname           string `gorm:"not null"`
	Lastname            string `gorm:"not null"`
	Email               string
	Phone               *string
	Status              string `gorm:"type:varchar(16);not null"`
	MemberType          string `gorm:"type:varchar(16);not null"`
	Gender              string `gorm:"type:varchar(16)"`
	BirthDate           *time.Time
	AttendanceFrequency string `gorm:"type:varchar(16);not null"`
	JoinDate            time.Time
	ImageURL            string
	FamilyID            *string   `gorm:"index"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

type Event struct {
	ID             string    `gorm:"primaryKey"`
	OrganizationID string    `gorm:"not null;index"`
	Title          string    `gorm:"not null"`
	EventType      string    `gorm:"type:varchar(32);not null;index"`
	StartDate      time.Time `gorm:"not null;index"`
	EndDate        time.Time `gorm:"not null"`
	Location       string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type Attendance struct {
	ID             string    `gorm:"primaryKey"`
	OrganizationID string    `gorm:"not null;index"`
	EventID        string    `gorm:"not null;index"`
	MemberID       string    `gorm:"not null;index"`
	Status         string    `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Attendance) TableName() string { return "attendance" }

type DonationBatch struct {
	ID             string          `gorm:"primaryKey"`
	OrganizationID string          `gorm:"not null;index"`
	BatchDate      time.Time       `gorm:"not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DonationCount  int
	Status         string    `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type Donation struct {
	ID             string          `gorm:"primaryKey"`
	OrganizationID string          `gorm:"not null;index"`
	DonorID        string          `gorm:"not null;index"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Date           time.Time       `gorm:"not null"`
	BatchID        string          `gorm:"not null;index"`
	PaymentMethod  string          `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

type Group struct {
	ID             string `gorm:"primaryKey"`
	OrganizationID string `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Description    string
	LeaderID       *string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type GroupMember struct {
	ID             string    `gorm:"primaryKey"`
	OrganizationID string    `gorm:"not null;index"`
	GroupID        string    `gorm:"not null;index"`
	MemberID       string    `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type Family struct {
	ID                    string `gorm:"primaryKey"`
	OrganizationID        string `gorm:"not null;index"`
	FamilyName            string `gorm:"not null"`
	PrimaryContactID      string `gorm:"not null"`
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

type Task struct {
	ID             string `gorm:"primaryKey"`
	OrganizationID string `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	Priority       string `gorm:"type:varchar(16);not null"`
	Status         string `gorm:"type:varchar(16);not null"`
	AssigneeID     *string
	RequestorID    *string
	DueDate        time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type ChildGuardian struct {
	ID             string `gorm:"primaryKey"`
	OrganizationID string `gorm:"not null;index"`
	ChildID        string `gorm:"not null;index"`
	GuardianID     string `gorm:"not null;index"`
	Relationship   string `gorm:"type:varchar(32);not null"`
	IsPrimary      bool
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (ChildGuardian) TableName() string { return "child_guardians" }

type ChildCheckIn struct {
	ID             string    `gorm:"primaryKey"`
	OrganizationID string    `gorm:"not null;index"`
	ChildID        string    `gorm:"not null;index"`
	EventID        string    `gorm:"not null;index"`
	CheckedInBy    string    `gorm:"not null"`
	CheckInTime    time.Time `gorm:"not null"`
	CheckOutTime   time.Time `gorm:"not null"`
	Notes          *string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (ChildCheckIn) TableName() string { return "child_checkins" }
