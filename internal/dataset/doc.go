// Package dataset resolves remote LeRobot dataset metadata.
//
// A resolution fetches meta/info.json from the artifact host, checks that the
// declared codebase version is one the viewer understands, and hands back the
// validated version together with the descriptor. Downstream renderers then
// use URLBuilder to locate parquet and video artifacts.
//
// # Entry Points
//
// NewFetcher: construct a fetcher from FetcherConfig (host, token, timeout, retry).
// NewResolver: wrap a fetcher; Resolve, ResolveVersion and FetchDescriptor all validate.
// BuildArtifactURL / URLBuilder.ArtifactURL: pure URL construction.
//
// # Retry Behaviour
//
// A resolution makes at most two attempts inside a single 10s deadline.
// Transport faults are retried after 300ms × attempt. HTTP status failures,
// malformed bodies and cancellation are never retried.
//
// # Failures
//
// Every failure is an *Error carrying a Kind. Use KindOf or IsKind to branch;
// messages name the repository and, where relevant, the attempted URL.
package dataset
