package registry_client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/rs/zerolog/log"
)

// retryingClient retries transient failures of the wrapped client with exponential backoff
type retryingClient struct {
	inner           RegistryClient
	attempts        int
	initialInterval time.Duration
	onRetry         func(op string)
}

type RetryOption func(*retryingClient)

// OnRetry registers a hook called before every retried attempt
func OnRetry(hook func(op string)) RetryOption {
	return func(r *retryingClient) {
		r.onRetry = hook
	}
}

// NewRetryingClient wraps inner so each call is attempted at most attempts times.
// Only errors reported retryable by IsRetryable are retried.
func NewRetryingClient(inner RegistryClient, attempts int, initialInterval time.Duration, opts ...RetryOption) RegistryClient {
	if attempts < 1 {
		attempts = 1
	}
	if initialInterval <= 0 {
		initialInterval = backoff.DefaultInitialInterval
	}
	r := retryingClient{inner: inner, attempts: attempts, initialInterval: initialInterval}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r retryingClient) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.attempts-1)), ctx)
}

func retry[T any](ctx context.Context, r retryingClient, op string, call func() (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		result, err := call()
		if err != nil && !IsRetryable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}
	notify := func(err error, wait time.Duration) {
		log.Ctx(ctx).Warn().Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("registry call failed, retrying")
		if r.onRetry != nil {
			r.onRetry(op)
		}
	}
	return backoff.RetryNotifyWithData[T](operation, r.backOff(ctx), notify)
}

func (r retryingClient) GetSiteInfo(ctx context.Context) (api.SiteInfo, error) {
	return retry(ctx, r, "get_site_info", func() (api.SiteInfo, error) {
		return r.inner.GetSiteInfo(ctx)
	})
}

func (r retryingClient) CachedSiteInfo(ctx context.Context) (api.SiteInfo, error) {
	return retry(ctx, r, "cached_site_info", func() (api.SiteInfo, error) {
		return r.inner.CachedSiteInfo(ctx)
	})
}

func (r retryingClient) RequestAddDomain(ctx context.Context, domain string, localID string) (AddDomainResult, error) {
	return retry(ctx, r, "add_domain", func() (AddDomainResult, error) {
		return r.inner.RequestAddDomain(ctx, domain, localID)
	})
}

func (r retryingClient) RemoveDomain(ctx context.Context, domain string) (RemoveDomainResult, error) {
	return retry(ctx, r, "remove_domain", func() (RemoveDomainResult, error) {
		return r.inner.RemoveDomain(ctx, domain)
	})
}

func (r retryingClient) CheckDomain(ctx context.Context, domain string) (api.DomainCheckResponse, error) {
	return retry(ctx, r, "check_domain", func() (api.DomainCheckResponse, error) {
		return r.inner.CheckDomain(ctx, domain)
	})
}

// TestConnection is a health probe and reports the first failure as is
func (r retryingClient) TestConnection(ctx context.Context) api.RegistryConnectionResponse {
	return r.inner.TestConnection(ctx)
}
