package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sidjay999/Secretsanta/internal/assign"
	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
	"github.com/sidjay999/Secretsanta/internal/logger"
	"github.com/sidjay999/Secretsanta/internal/models"
	"github.com/sidjay999/Secretsanta/internal/repository"
)

type CreateGroupParams struct {
	AdminKey    string
	GroupId     string
	MemberNames []string
	// Force allows overwriting an existing group document (re-rolling a
	// group). Without it, creating a group under an existing id is rejected.
	Force bool
}

type MemberCode struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	AssignedTo string `json:"assignedTo"`
}

// CreateGroupResult is the only place the full pairing is ever exposed
// together. It is returned to the administrator once and must never be
// logged or re-derivable by non-admin callers.
type CreateGroupResult struct {
	GroupId     string       `json:"groupId"`
	MemberCodes []MemberCode `json:"memberCodes"`
}

type SantaService interface {
	CreateGroup(ctx context.Context, params CreateGroupParams) (*CreateGroupResult, *apperrors.AppError)
	ListGroups(ctx context.Context) ([]string, *apperrors.AppError)
	ListMembers(ctx context.Context, groupID string) ([]string, *apperrors.AppError)
	Reveal(ctx context.Context, groupID, name, code string) (string, *apperrors.AppError)
}

type santaService struct {
	groupRepo     repository.GroupRepository
	adminSetupKey string
	logger        *logger.Logger
}

func NewSantaService(
	groupRepo repository.GroupRepository,
	adminSetupKey string,
	logger *logger.Logger,
) SantaService {
	return &santaService{
		groupRepo:     groupRepo,
		adminSetupKey: adminSetupKey,
		logger:        logger,
	}
}

func (s *santaService) CreateGroup(ctx context.Context, params CreateGroupParams) (*CreateGroupResult, *apperrors.AppError) {
	// An unset setup key rejects every administrative request.
	if s.adminSetupKey == "" || params.AdminKey != s.adminSetupKey {
		s.logger.Warn("rejected group creation with invalid admin key")
		return nil, NotAuthorizedError()
	}

	names := assign.CleanNames(params.MemberNames)

	assignments, err := assign.Generate(names)
	if err != nil {
		return nil, InsufficientParticipantsError()
	}

	groupID := strings.TrimSpace(params.GroupId)
	if groupID == "" {
		groupID = uuid.New().String()
	}

	members := make(map[string]models.Member, len(names))
	memberCodes := make([]MemberCode, 0, len(names))

	for _, name := range names {
		code := assign.GenerateCode(name)
		members[name] = models.Member{
			Code:       code,
			AssignedTo: assignments[name],
			Revealed:   false,
		}
		memberCodes = append(memberCodes, MemberCode{
			Name:       name,
			Code:       code,
			AssignedTo: assignments[name],
		})
	}

	group := &models.Group{
		GroupId: groupID,
		Members: members,
	}

	if err := s.groupRepo.CreateGroup(ctx, group, params.Force); err != nil {
		return nil, err
	}

	// Codes and assignments stay out of the logs.
	s.logger.Info("group created", "group_id", groupID, "members", len(names), "overwrite", params.Force)

	return &CreateGroupResult{
		GroupId:     groupID,
		MemberCodes: memberCodes,
	}, nil
}

func (s *santaService) ListGroups(ctx context.Context) ([]string, *apperrors.AppError) {
	ids, err := s.groupRepo.ListGroupIDs(ctx)
	if err != nil {
		// An unconfigured store degrades to an empty listing rather than
		// failing the caller.
		if err.Code == apperrors.CodeServiceUnavailable {
			return []string{}, nil
		}
		return nil, err
	}

	sort.Strings(ids)
	return ids, nil
}

func (s *santaService) ListMembers(ctx context.Context, groupID string) ([]string, *apperrors.AppError) {
	if groupID == "" {
		return nil, MissingFieldsError()
	}

	group, err := s.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		// Unknown group and unconfigured store both degrade to an empty
		// selection list; no codes or assignments ever leave this path.
		if err.Code == apperrors.CodeNotFound || err.Code == apperrors.CodeServiceUnavailable {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(group.Members))
	for name := range group.Members {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (s *santaService) Reveal(ctx context.Context, groupID, name, code string) (string, *apperrors.AppError) {
	if groupID == "" || name == "" || code == "" {
		return "", MissingFieldsError()
	}

	group, err := s.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		if err.Code == apperrors.CodeNotFound {
			return "", GroupNotFoundError()
		}
		return "", err
	}

	member, ok := group.Members[name]
	if !ok {
		return "", MemberNotFoundError()
	}

	if member.Code != code {
		return "", InvalidCodeError()
	}

	if member.AssignedTo == "" {
		// Should not happen given creation writes the full map atomically,
		// but checked defensively.
		return "", AssignmentNotReadyError()
	}

	// First successful reveal flips the flag; it is informational only and
	// never gates repeat lookups, so the write is skipped when already set.
	if !member.Revealed {
		if err := s.groupRepo.MarkRevealed(ctx, groupID, name); err != nil {
			return "", err
		}
	}

	return member.AssignedTo, nil
}
