// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	identitymw "github.com/bazaarlabs/seller-service/internal/identity"
	"github.com/bazaarlabs/seller-service/internal/logging"
	"github.com/bazaarlabs/seller-service/internal/monitoring"
	"github.com/bazaarlabs/seller-service/internal/storage"
	"github.com/bazaarlabs/seller-service/internal/tracing"
	"github.com/bazaarlabs/seller-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	// adminEmails is the administrator bootstrap set. Accounts with these
	// emails are promoted at creation, or retroactively on lookup if the
	// role has drifted.
	adminEmails map[string]struct{}

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	adminEmails []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := &Service{
		storage:     storage,
		adminEmails: make(map[string]struct{}, len(adminEmails)),
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}

	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			s.adminEmails[email] = struct{}{}
		}
	}

	return s
}

// Resolve maps an identity assertion to an account, creating one on first
// sight. Lookup order is subject key, then email (the provider may have issued
// a new subject for a known address). Creation racing a concurrent request for
// the same identity loses the uniqueness constraint and retries the email
// lookup once, so all racers converge on the single created row.
func (s *Service) Resolve(ctx context.Context, assertion *identitymw.Assertion) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Resolve")
	defer span.End()

	account, err := s.storage.GetAccountBySubject(ctx, assertion.SubjectKey)
	if err == nil {
		return s.ensureBootstrapRole(ctx, account), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account by subject: %w", err)
	}

	account, err = s.storage.GetAccountByEmail(ctx, assertion.Email)
	if err == nil {
		return s.ensureBootstrapRole(ctx, account), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account by email: %w", err)
	}

	role := types.RoleStandard
	if s.isBootstrapAdmin(assertion.Email) {
		role = types.RoleAdministrator
	}

	account, err = s.storage.CreateAccount(ctx, &types.Account{
		SubjectKey:  assertion.SubjectKey,
		Email:       assertion.Email,
		DisplayName: assertion.DisplayName,
		Role:        role,
		Active:      true,
		CanList:     false,
	})
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, storage.ErrDuplicateKey) {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Benign double-submit race: another request created the row between our
	// lookup and insert. One retry on the email path resolves it.
	account, err = s.storage.GetAccountByEmail(ctx, assertion.Email)
	if err != nil {
		s.logger.Security().AuthenticationFailure(assertion.SubjectKey)
		return nil, fmt.Errorf("%w: retry lookup after conflict: %v", ErrResolutionFailed, err)
	}

	return s.ensureBootstrapRole(ctx, account), nil
}

func (s *Service) isBootstrapAdmin(email string) bool {
	_, ok := s.adminEmails[strings.ToLower(email)]
	return ok
}

// ensureBootstrapRole promotes drifted bootstrap administrators. The check is
// idempotent and side-effect-only, a failed promotion never fails resolution.
func (s *Service) ensureBootstrapRole(ctx context.Context, account *types.Account) *types.Account {
	if !s.isBootstrapAdmin(account.Email) || account.Role == types.RoleAdministrator {
		return account
	}

	if err := s.storage.SetAccountRole(ctx, account.ID, types.RoleAdministrator); err != nil {
		s.logger.Errorf("failed to promote bootstrap administrator %d: %v", account.ID, err)
		return account
	}

	s.logger.Security().PrivilegeChange(account.ID, account.ID, "bootstrap_admin_promotion")
	account.Role = types.RoleAdministrator
	return account
}
