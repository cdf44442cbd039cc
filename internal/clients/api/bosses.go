package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

func (c *client) GetBoss(ctx context.Context, bossID int64) (*entities.Boss, error) {
	return c.boss(ctx, http.MethodGet, bossID)
}

func (c *client) AttackBoss(ctx context.Context, bossID int64) (*entities.Boss, error) {
	return c.boss(ctx, http.MethodPost, bossID)
}

func (c *client) boss(ctx context.Context, method string, bossID int64) (*entities.Boss, error) {
	var out entities.Boss
	ok, err := c.call(ctx, &request{method: method, path: fmt.Sprintf("/bosses/%d", bossID)}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("boss %d not found", bossID)
	}
	return &out, nil
}

func (c *client) PrefetchImage(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return errors.InvalidArgument("image url cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return errors.Wrapf(err, "invalid image url %s", imageURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport(err, "failed to fetch image")
	}
	defer func() { _ = resp.Body.Close() }()

	n, _ := io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.FromResponse(resp.StatusCode, "", "").WithMeta("url", imageURL)
	}

	c.logger.Debug("image prefetched", zap.String("url", imageURL), zap.Int64("bytes", n))
	return nil
}
