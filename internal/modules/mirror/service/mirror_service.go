package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tokenhub/internal/modules/mirror/domain"
	mirrorout "tokenhub/internal/modules/mirror/port/out"
	apperrors "tokenhub/internal/platform/errors"
)

type MirrorService struct {
	remote mirrorout.RemoteStore
	tasks  mirrorout.Submitter
	server mirrorout.HubServer
	hub    mirrorout.RemoteStore
	log    *logrus.Entry
}

func NewMirrorService(remote mirrorout.RemoteStore, tasks mirrorout.Submitter, server mirrorout.HubServer, hub mirrorout.RemoteStore, log *logrus.Entry) *MirrorService {
	return &MirrorService{remote: remote, tasks: tasks, server: server, hub: hub, log: log}
}

// LogScan submits a best-effort upsert of the stored record. A failed mirror
// is a permanently missed mirror until the next independent write; the error
// is logged and discarded.
func (s *MirrorService) LogScan(_ context.Context, space string, doc domain.Document) {
	if space == "" || s.remote == nil {
		return
	}
	s.tasks.Submit(func(ctx context.Context) {
		if err := s.remote.SaveScan(ctx, space, doc); err != nil {
			s.log.WithError(err).WithField("record_id", doc.ID).Debug("mirror scan dropped")
		}
	})
}

func (s *MirrorService) ClearUser(_ context.Context, space, userID string) {
	if space == "" || s.remote == nil {
		return
	}
	s.tasks.Submit(func(ctx context.Context) {
		if err := s.remote.ClearUser(ctx, space, userID); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Debug("mirror clear dropped")
		}
	})
}

func (s *MirrorService) ClearToday(_ context.Context, space, userID string, startMillis, endMillis int64) {
	if space == "" || s.remote == nil {
		return
	}
	s.tasks.Submit(func(ctx context.Context) {
		if err := s.remote.ClearToday(ctx, space, userID, startMillis, endMillis); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Debug("mirror clear dropped")
		}
	})
}

func (s *MirrorService) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		return apperrors.ErrHubUnconfigured
	}
	if s.server == nil || s.hub == nil {
		return fmt.Errorf("hub server is not configured")
	}
	s.log.WithField("addr", addr).Info("serving family hub")
	return s.server.Serve(ctx, addr, s.hub)
}

func (s *MirrorService) ListRemote(ctx context.Context, space, userID string) ([]domain.Document, error) {
	if space == "" {
		return nil, apperrors.ErrNoFamilySpace
	}
	if s.remote == nil {
		return nil, apperrors.ErrHubUnconfigured
	}
	return s.remote.List(ctx, space, userID)
}
