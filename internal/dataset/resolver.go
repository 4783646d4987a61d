package dataset

import (
	"context"
	"log/slog"

	"lerobotviz/internal/logging"
)

// DescriptorFetcher retrieves raw, unvalidated descriptors.
type DescriptorFetcher interface {
	FetchDescriptor(ctx context.Context, repoID, prefix string) (*Descriptor, error)
}

// Resolution is a descriptor whose codebase version passed validation.
type Resolution struct {
	RepoID     string
	Prefix     string
	Version    string
	Descriptor *Descriptor
}

// Resolver runs fetch then validate and is the only way rendering code
// should obtain a Descriptor.
type Resolver struct {
	fetcher DescriptorFetcher
	urls    URLBuilder
	logger  *slog.Logger
}

var _ DescriptorFetcher = (*Fetcher)(nil)

// ResolverOption customizes the resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for resolution outcomes.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBaseURL overrides the artifact host used by URLs.
func WithBaseURL(baseURL string) ResolverOption {
	return func(r *Resolver) {
		r.urls = NewURLBuilder(baseURL)
	}
}

// NewResolver wraps fetcher. When fetcher exposes BaseURL the URL builder
// follows it, otherwise DefaultBaseURL is used.
func NewResolver(fetcher DescriptorFetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher: fetcher,
		urls:    NewURLBuilder(""),
		logger:  logging.NewNop(),
	}
	if based, ok := fetcher.(interface{ BaseURL() string }); ok {
		r.urls = NewURLBuilder(based.BaseURL())
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "dataset-resolver")
	return r
}

// URLs returns the builder bound to the resolver's artifact host.
func (r *Resolver) URLs() URLBuilder {
	return r.urls
}

// Resolve fetches the descriptor for repoID and validates its version.
func (r *Resolver) Resolve(ctx context.Context, repoID, prefix string) (res *Resolution, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = incompatibleDataset(repoID)
		}
	}()
	if r.fetcher == nil {
		return nil, incompatibleDataset(repoID)
	}

	desc, err := r.fetcher.FetchDescriptor(ctx, repoID, prefix)
	if err != nil {
		return nil, asResolutionError(repoID, err)
	}
	if desc == nil {
		return nil, incompatibleDataset(repoID)
	}
	version, err := ValidateVersion(repoID, desc)
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, r.logger), "dataset version rejected", "version_rejected",
			logging.String(logging.FieldRepoID, repoID),
			logging.String("codebase_version", desc.CodebaseVersion),
			logging.String(logging.FieldErrorHint, "supported versions: v3.0, v2.1, v2.0"),
			logging.String(logging.FieldImpact, "dataset cannot be rendered"),
		)
		return nil, err
	}

	logging.WithContext(ctx, r.logger).Info("dataset resolved",
		logging.String(logging.FieldRepoID, repoID),
		logging.String("codebase_version", version),
	)
	return &Resolution{RepoID: repoID, Prefix: prefix, Version: version, Descriptor: desc}, nil
}

// ResolveVersion returns only the validated codebase version.
func (r *Resolver) ResolveVersion(ctx context.Context, repoID, prefix string) (string, error) {
	res, err := r.Resolve(ctx, repoID, prefix)
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// FetchDescriptor returns the descriptor once its version has been validated.
func (r *Resolver) FetchDescriptor(ctx context.Context, repoID, prefix string) (*Descriptor, error) {
	res, err := r.Resolve(ctx, repoID, prefix)
	if err != nil {
		return nil, err
	}
	return res.Descriptor, nil
}

// ArtifactURL builds a URL for relPath inside a resolved dataset.
func (res *Resolution) ArtifactURL(urls URLBuilder, relPath string) string {
	return urls.ArtifactURL(res.RepoID, res.Version, relPath, res.Prefix)
}
