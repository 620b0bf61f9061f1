package canteen

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCanteen     = errors.New("invalid canteen")
	ErrInvalidCredentials = errors.New("invalid staff credentials")
)

type Category string

const (
	CategoryMain  Category = "main"
	CategoryJuice Category = "juice"
	CategorySnack Category = "snack"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMain, CategoryJuice, CategorySnack:
		return true
	default:
		return false
	}
}

// CrowdLevel is a static label, not derived from load.
type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "Low"
	CrowdMedium CrowdLevel = "Medium"
	CrowdHigh   CrowdLevel = "High"
)

func (c CrowdLevel) IsValid() bool {
	switch c {
	case CrowdLow, CrowdMedium, CrowdHigh:
		return true
	default:
		return false
	}
}

type Canteen struct {
	id           string
	name         string
	category     Category
	crowdLevel   CrowdLevel
	staffID      string
	passwordHash string
}

func NewCanteen(id, name string, category Category, crowd CrowdLevel, staffID, passwordHash string) (*Canteen, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCanteen
	}
	if !category.IsValid() || !crowd.IsValid() {
		return nil, ErrInvalidCanteen
	}
	if strings.TrimSpace(staffID) == "" || passwordHash == "" {
		return nil, ErrInvalidCanteen
	}
	return &Canteen{
		id:           id,
		name:         name,
		category:     category,
		crowdLevel:   crowd,
		staffID:      strings.TrimSpace(staffID),
		passwordHash: passwordHash,
	}, nil
}

func ReconstructCanteen(id, name string, category Category, crowd CrowdLevel, staffID, passwordHash string) *Canteen {
	return &Canteen{
		id:           id,
		name:         name,
		category:     category,
		crowdLevel:   crowd,
		staffID:      staffID,
		passwordHash: passwordHash,
	}
}

// MatchesStaffID compares trimmed and case-insensitively.
func (c *Canteen) MatchesStaffID(staffID string) bool {
	return strings.EqualFold(c.staffID, strings.TrimSpace(staffID))
}

func (c *Canteen) ID() string             { return c.id }
func (c *Canteen) Name() string           { return c.name }
func (c *Canteen) Category() Category     { return c.category }
func (c *Canteen) CrowdLevel() CrowdLevel { return c.crowdLevel }
func (c *Canteen) StaffID() string        { return c.staffID }
func (c *Canteen) PasswordHash() string   { return c.passwordHash }
