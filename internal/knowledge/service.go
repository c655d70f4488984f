package knowledge

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/lumenkb/lumen-server/internal/apperr"
	"github.com/lumenkb/lumen-server/internal/ragindex"
	"github.com/lumenkb/lumen-server/internal/snowflake"
)

const (
	msgNameTaken = "A knowledge base with this name already exists."
	msgNotFound  = "The knowledge base could not be found."
)

// KnowledgeService implements the knowledge-base CRUD operations. The
// caller's user id arrives as an explicit parameter from the handler.
type KnowledgeService interface {
	Create(ctx context.Context, callerID int64, in Input) (*Knowledge, error)
	Update(ctx context.Context, callerID, id int64, in Input) error
	Remove(ctx context.Context, callerID, id int64) error
	List(ctx context.Context, callerID int64) ([]Knowledge, error)
	Get(ctx context.Context, id int64) (*Knowledge, error)
	Languages() []Language
	ParticiplePlugins() []ragindex.PluginOption
}

type knowledgeService struct {
	repo      KnowledgeRepository
	provider  ragindex.Provider
	ids       *snowflake.Generator
	logger    *zap.Logger
	opts      Options
	indexOpts ragindex.Options
}

func NewKnowledgeService(
	repo KnowledgeRepository,
	provider ragindex.Provider,
	ids *snowflake.Generator,
	logger *zap.Logger,
	opts Options,
	indexOpts ragindex.Options,
) KnowledgeService {
	return &knowledgeService{
		repo:      repo,
		provider:  provider,
		ids:       ids,
		logger:    logger,
		opts:      opts,
		indexOpts: indexOpts,
	}
}

func (s *knowledgeService) Create(ctx context.Context, callerID int64, in Input) (*Knowledge, error) {
	name := strings.TrimSpace(in.Name)
	taken, err := s.repo.NameExists(ctx, callerID, name, 0)
	if err != nil {
		s.logger.Error("knowledge name lookup failed", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, apperr.NewConflict(msgNameTaken)
	}

	k := &Knowledge{
		Name:        name,
		Description: in.Description,
		Language:    in.Language,
		Icon:        in.Icon,
		IndexConfig: in.IndexConfig,
	}
	k.ID = s.ids.NextID()
	k.SetCreationAudit(callerID)

	if err := s.provider.Create(ctx, k.ID, k.IndexConfig); err != nil {
		s.logger.Error("index creation failed", zap.Int64("knowledgeID", k.ID), zap.Error(err))
		return nil, err
	}
	if err := s.repo.Create(ctx, k); err != nil {
		s.logger.Error("knowledge creation failed", zap.Int64("knowledgeID", k.ID), zap.Error(err))
		return nil, err
	}
	return k, nil
}

func (s *knowledgeService) Update(ctx context.Context, callerID, id int64, in Input) error {
	name := strings.TrimSpace(in.Name)
	taken, err := s.repo.NameExists(ctx, callerID, name, id)
	if err != nil {
		return err
	}
	if taken {
		return apperr.NewConflict(msgNameTaken)
	}

	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrKnowledgeNotFound) {
			return apperr.NewNotFound(msgNotFound)
		}
		return err
	}

	k.Name = name
	k.Description = in.Description
	k.Language = in.Language
	k.Icon = in.Icon
	k.IndexConfig = in.IndexConfig
	k.SetModificationAudit(callerID)

	if err := s.repo.Save(ctx, k); err != nil {
		s.logger.Error("knowledge update failed", zap.Int64("knowledgeID", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *knowledgeService) Remove(ctx context.Context, callerID, id int64) error {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrKnowledgeNotFound) {
			return apperr.NewNotFound(msgNotFound)
		}
		return err
	}
	k.SetModificationAudit(callerID)

	if err := s.provider.Remove(ctx, id); err != nil {
		s.logger.Error("index removal failed", zap.Int64("knowledgeID", id), zap.Error(err))
		return err
	}
	if err := s.repo.Remove(ctx, k); err != nil {
		s.logger.Error("knowledge removal failed", zap.Int64("knowledgeID", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *knowledgeService) List(ctx context.Context, callerID int64) ([]Knowledge, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

func (s *knowledgeService) Get(ctx context.Context, id int64) (*Knowledge, error) {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrKnowledgeNotFound) {
			return nil, apperr.NewNotFound(msgNotFound)
		}
		return nil, err
	}
	return k, nil
}

func (s *knowledgeService) Languages() []Language {
	return s.opts.Languages
}

func (s *knowledgeService) ParticiplePlugins() []ragindex.PluginOption {
	return s.indexOpts.ParticiplePlugins()
}
