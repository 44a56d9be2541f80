package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/logger"
	"declarations-backend/internal/render"
	"declarations-backend/internal/repository"
	"declarations-backend/internal/storage"
)

const generatedWindow = 7 * 24 * time.Hour

type requestService struct {
	requestRepo     repository.RequestRepository
	userRepo        repository.UserRepository
	declarationRepo repository.DeclarationRepository
	store           storage.Storage
	pdfGen          *render.PDFGenerator
	emailSvc        EmailService
	bucket          string
	tmpDir          string
	itemTimeout     time.Duration
	now             func() time.Time
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	declarationRepo repository.DeclarationRepository,
	store storage.Storage,
	pdfGen *render.PDFGenerator,
	emailSvc EmailService,
	bucket, tmpDir string,
	itemTimeout time.Duration,
) RequestService {
	return &requestService{
		requestRepo:     requestRepo,
		userRepo:        userRepo,
		declarationRepo: declarationRepo,
		store:           store,
		pdfGen:          pdfGen,
		emailSvc:        emailSvc,
		bucket:          bucket,
		tmpDir:          tmpDir,
		itemTimeout:     itemTimeout,
		now:             time.Now,
	}
}

func (s *requestService) Create(ctx context.Context, callerID, declarationID string) (*domain.Request, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if caller.IsAdmin {
		return nil, ErrPermissionDenied
	}

	declaration, err := s.declarationRepo.GetByID(ctx, declarationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("declaration %s: %w", declarationID, ErrNotFound)
		}
		return nil, err
	}
	if !declaration.IsActive {
		return nil, fmt.Errorf("declaration %s: %w", declarationID, ErrNotFound)
	}

	hasPending, err := s.requestRepo.HasPending(ctx, callerID, declarationID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, ErrPendingRequestExists
	}

	req := &domain.Request{UserID: callerID, DeclarationID: declarationID}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		// The store's unique index closes the window between the check
		// above and the insert.
		if errors.Is(err, repository.ErrDuplicatePending) {
			return nil, ErrPendingRequestExists
		}
		return nil, err
	}
	return req, nil
}

func (s *requestService) ListAll(ctx context.Context, callerID string) ([]domain.RequestSummary, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, requests)
}

func (s *requestService) ListGenerated(ctx context.Context, callerID string) ([]domain.RequestSummary, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListGeneratedSince(ctx, s.now().Add(-generatedWindow))
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, requests)
}

func (s *requestService) ListMine(ctx context.Context, callerID string) ([]domain.UserRequest, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if caller.IsAdmin {
		return nil, ErrPermissionDenied
	}

	requests, err := s.requestRepo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserRequest, 0, len(requests))
	attendants := map[string]string{}
	for _, req := range requests {
		declaration, err := s.declarationRepo.GetByID(ctx, req.DeclarationID)
		if err != nil {
			return nil, err
		}
		attendantName := ""
		if req.AttendantID != nil {
			name, ok := attendants[*req.AttendantID]
			if !ok {
				if attendant, err := s.userRepo.GetByID(ctx, *req.AttendantID); err == nil {
					name = attendant.Name
				}
				attendants[*req.AttendantID] = name
			}
			attendantName = name
		}
		views = append(views, domain.UserRequest{
			ID:             req.ID,
			Declaration:    declaration.Type,
			AttendantName:  attendantName,
			RequestDate:    req.CreatedAt,
			Status:         req.Status,
			GenerationDate: req.GenerationDate,
		})
	}
	return views, nil
}

func (s *requestService) Generate(ctx context.Context, callerID string, requestIDs []string, directorID string) ([]domain.RequestSummary, error) {
	attendant, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !attendant.IsAdmin {
		return nil, ErrPermissionDenied
	}

	var director *domain.User
	if directorID != "" {
		director, err = s.userRepo.GetByID(ctx, directorID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			// Director fields render empty when the reference is stale.
			logger.Warn("director not found, signature fields will be empty", "director_id", directorID)
			director = nil
		}
	}

	results := make([]domain.RequestSummary, 0, len(requestIDs))
	for _, requestID := range requestIDs {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		itemCtx, cancel := context.WithTimeout(ctx, s.itemTimeout)
		summary, err := s.generateOne(itemCtx, requestID, attendant, director)
		cancel()

		if err != nil {
			// Per-item failures never abort the batch.
			logger.Error("failed to generate declaration", "request_id", requestID, "error", err)
			continue
		}
		if summary != nil {
			results = append(results, *summary)
		}
	}
	return results, nil
}

// generateOne runs the full pipeline for a single request. A nil, nil
// return means the item was skipped (not pending, template inactive, or
// lost a race); errors are transient failures belonging to the item.
func (s *requestService) generateOne(ctx context.Context, requestID string, attendant, director *domain.User) (*domain.RequestSummary, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("request not found, skipping", "request_id", requestID)
			return nil, nil
		}
		return nil, err
	}
	if req.Status != domain.RequestStatusPending {
		logger.Warn("request is not pending, skipping", "request_id", requestID, "status", req.Status)
		return nil, nil
	}

	declaration, err := s.declarationRepo.GetByID(ctx, req.DeclarationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("declaration not found, skipping", "request_id", requestID, "declaration_id", req.DeclarationID)
			return nil, nil
		}
		return nil, err
	}
	if !declaration.IsActive {
		logger.Warn("declaration is inactive, skipping", "request_id", requestID, "declaration_id", declaration.ID)
		return nil, nil
	}

	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester %s: %w", req.UserID, err)
	}

	body, footer := render.Render(declaration, requester, director, s.now())
	document, err := s.pdfGen.Generate(declaration.Title, body, footer)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	fileName := fmt.Sprintf("%s_%d.pdf", req.ID, s.now().UnixMilli())
	data, cleanup, err := s.stage(fileName, document)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	url, err := s.store.Upload(ctx, s.bucket, fileName, data, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	generatedAt := s.now()
	if err := s.requestRepo.MarkGenerated(ctx, req.ID, url, generatedAt, attendant.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Another attendant generated this request between our read
			// and the guarded update.
			logger.Warn("request no longer pending, skipping", "request_id", req.ID)
			return nil, nil
		}
		return nil, err
	}

	return &domain.RequestSummary{
		ID:             req.ID,
		Declaration:    declaration.Type,
		Name:           requester.Name,
		RequestDate:    req.CreatedAt,
		Status:         domain.RequestStatusProcessing,
		URL:            url,
		GenerationDate: &generatedAt,
	}, nil
}

// stage writes the document to a scratch file and hands back its bytes
// after a read-back check. The returned cleanup removes the file and is
// safe to call on every exit path.
func (s *requestService) stage(fileName string, document []byte) ([]byte, func(), error) {
	if err := os.MkdirAll(s.tmpDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	path := filepath.Join(s.tmpDir, fileName)
	if err := os.WriteFile(path, document, 0644); err != nil {
		return nil, nil, fmt.Errorf("failed to stage document: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove staged document", "path", path, "error", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to read staged document: %w", err)
	}
	if len(data) == 0 {
		cleanup()
		return nil, nil, fmt.Errorf("staged document %s is empty", path)
	}
	return data, cleanup, nil
}

func (s *requestService) UpdateStatus(ctx context.Context, callerID string, requestIDs []string, target domain.RequestStatus) ([]domain.RequestSummary, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	results := make([]domain.RequestSummary, 0, len(requestIDs))
	for _, requestID := range requestIDs {
		req, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			logger.Warn("request not found, skipping status update", "request_id", requestID)
			continue
		}

		// Terminal states are immutable, and a request may only be
		// finalized after it has been through generation.
		if req.Status.IsTerminal() {
			logger.Debug("request already finalized, skipping", "request_id", requestID, "status", req.Status)
			continue
		}
		if target.IsTerminal() && req.Status != domain.RequestStatusProcessing {
			logger.Debug("request not processing, cannot finalize", "request_id", requestID, "status", req.Status)
			continue
		}

		if err := s.requestRepo.UpdateStatus(ctx, requestID, req.Status, target); err != nil {
			logger.Warn("failed to update request status", "request_id", requestID, "error", err)
			continue
		}

		declaration, derr := s.declarationRepo.GetByID(ctx, req.DeclarationID)
		requester, uerr := s.userRepo.GetByID(ctx, req.UserID)
		if derr != nil || uerr != nil {
			logger.Warn("failed to load request references", "request_id", requestID)
			continue
		}

		results = append(results, domain.RequestSummary{
			ID:          requestID,
			Declaration: declaration.Type,
			Name:        requester.Name,
			RequestDate: req.CreatedAt,
			Status:      target,
		})

		if target.IsTerminal() && s.emailSvc != nil {
			if err := s.emailSvc.SendStatusNotification(ctx, requester.Email, requester.Name, declaration.Type, target); err != nil {
				logger.Warn("failed to send status notification", "request_id", requestID, "error", err)
			}
		}
	}
	return results, nil
}

func (s *requestService) requireAdmin(ctx context.Context, callerID string) error {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.IsAdmin {
		return ErrPermissionDenied
	}
	return nil
}

func (s *requestService) summarize(ctx context.Context, requests []domain.Request) ([]domain.RequestSummary, error) {
	summaries := make([]domain.RequestSummary, 0, len(requests))
	declarations := map[string]*domain.Declaration{}
	users := map[string]*domain.User{}
	for _, req := range requests {
		declaration, ok := declarations[req.DeclarationID]
		if !ok {
			var err error
			declaration, err = s.declarationRepo.GetByID(ctx, req.DeclarationID)
			if err != nil {
				return nil, err
			}
			declarations[req.DeclarationID] = declaration
		}
		requester, ok := users[req.UserID]
		if !ok {
			var err error
			requester, err = s.userRepo.GetByID(ctx, req.UserID)
			if err != nil {
				return nil, err
			}
			users[req.UserID] = requester
		}

		summary := domain.RequestSummary{
			ID:                   req.ID,
			Declaration:          declaration.Type,
			DeclarationSignature: declaration.SignatureType,
			Name:                 requester.Name,
			RequestDate:          req.CreatedAt,
			Status:               req.Status,
			GenerationDate:       req.GenerationDate,
		}
		if req.URL != nil {
			summary.URL = *req.URL
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
