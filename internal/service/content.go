package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/qa-board/internal/domain"
)

// contentStore is the narrow persistence surface the shared lifecycle
// logic needs from an entity repository, generic over the editable
// payload type.
type contentStore[C any] interface {
	AuthorOf(ctx context.Context, id int64) (string, error)
	UpdateContent(ctx context.Context, id int64, content C) (int64, error)
	Disconnect(ctx context.Context, id int64, author string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// content carries the lifecycle rules shared by questions and answers:
// who may update, who may disconnect, and how permanent deletion
// behaves. The two services specialize it per entity.
type content[C any] struct {
	store contentStore[C]
	users domain.UserRepository
}

// Update overwrites the record's editable fields. Only the record's
// current author or an admin may update; the author field and id never
// change. Returns domain.ErrNotAuthorized for anyone else and
// domain.ErrNotFound for a missing id, leaving the record untouched.
func (c *content[C]) Update(ctx context.Context, id int64, payload C, actingUsername string) error {
	author, err := c.store.AuthorOf(ctx, id)
	if err != nil {
		return err
	}

	if author != actingUsername {
		admin, err := c.actingUserIsAdmin(ctx, actingUsername)
		if err != nil {
			return err
		}
		if !admin {
			return domain.ErrNotAuthorized
		}
	}

	rows, err := c.store.UpdateContent(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Disconnect rewrites the record's author to the anonymous sentinel,
// preserving the content. This is self-service removal of identity, not
// moderation: there is no admin override, and a request from anyone but
// the stored author reports false with no error. Once a record is
// anonymized the author no longer matches any real user, so a repeat
// call is a no-op.
func (c *content[C]) Disconnect(ctx context.Context, id int64, requestingUsername string) (bool, error) {
	rows, err := c.store.Disconnect(ctx, id, requestingUsername)
	if err != nil {
		return false, fmt.Errorf("disconnect: %w", err)
	}
	return rows > 0, nil
}

// DeletePermanently removes the record. No authorization check happens
// here; the calling layer is responsible for verifying the admin role
// first. Deleting a missing id succeeds.
func (c *content[C]) DeletePermanently(ctx context.Context, id int64) error {
	if _, err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// actingUserIsAdmin resolves the acting user's role. An unknown actor
// has no elevated rights, so a missing user is false, not an error.
func (c *content[C]) actingUserIsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := c.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get acting user: %w", err)
	}
	return user.IsAdmin(), nil
}
