package models

import (
	"fmt"
	"strings"
	"time"
)

// Member is one participant's record inside a group document. The map it
// lives in is immutable after creation except for the Revealed flag.
type Member struct {
	Code       string `dynamodbav:"code" json:"code"`
	AssignedTo string `dynamodbav:"assigned_to" json:"assignedTo"`
	Revealed   bool   `dynamodbav:"revealed" json:"revealed"`
}

// Group is stored as a single document: one item per group, keyed by the
// group identifier, holding the full participant map.
type Group struct {
	GroupId   string            `dynamodbav:"group_id"`
	Members   map[string]Member `dynamodbav:"members"`
	CreatedAt time.Time         `dynamodbav:"created_at"`

	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
}

// Key handlers

func GroupPK(groupID string) string {
	return fmt.Sprintf("GROUP#%s", groupID)
}

func GroupPKPrefix() string {
	return "GROUP#"
}

func MetaSK() string {
	return "META"
}

func ExtractGroupID(pk string) (string, error) {
	if !strings.HasPrefix(pk, GroupPKPrefix()) {
		return "", fmt.Errorf("invalid group PK format: %s", pk)
	}
	return pk[len(GroupPKPrefix()):], nil
}
