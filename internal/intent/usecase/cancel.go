package usecase

import (
	"context"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/model"
)

// Cancel drops a stored preview.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, previewID string) error {
	if _, ok := uc.previews.get(previewID, sc.UserID); !ok {
		return intent.ErrPreviewNotFound
	}
	if !uc.previews.take(previewID) {
		return intent.ErrPreviewNotFound
	}
	uc.l.Infof(ctx, "intent.usecase.Cancel: user=%s id=%s", sc.UserID, previewID)
	return nil
}
