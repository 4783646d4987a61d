package dataset

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"
)

// Descriptor models a dataset's meta/info.json document. Fields missing from
// older schema generations decode to their zero values.
type Descriptor struct {
	CodebaseVersion    string                     `json:"codebase_version"`
	RobotType          string                     `json:"robot_type,omitempty"`
	TotalEpisodes      int64                      `json:"total_episodes"`
	TotalFrames        int64                      `json:"total_frames"`
	TotalTasks         int64                      `json:"total_tasks"`
	TotalVideos        int64                      `json:"total_videos,omitempty"`
	TotalChunks        int64                      `json:"total_chunks,omitempty"`
	ChunksSize         int64                      `json:"chunks_size"`
	DataFilesSizeInMB  float64                    `json:"data_files_size_in_mb,omitempty"`
	VideoFilesSizeInMB float64                    `json:"video_files_size_in_mb,omitempty"`
	FPS                float64                    `json:"fps"`
	Splits             map[string]string          `json:"splits"`
	DataPath           string                     `json:"data_path"`
	VideoPath          string                     `json:"video_path,omitempty"`
	Features           map[string]json.RawMessage `json:"features"`
}

// SplitNames returns the split keys in lexical order.
func (d *Descriptor) SplitNames() []string {
	if d == nil || len(d.Splits) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Splits))
	for name := range d.Splits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FeatureNames returns the feature keys in lexical order.
func (d *Descriptor) FeatureNames() []string {
	if d == nil || len(d.Features) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Features))
	for name := range d.Features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var errMissingFeatures = errors.New(`missing required "features" field`)

// decodeDescriptor parses body and enforces the one shape rule owned by the
// fetcher: a top-level "features" entry must be present. Every other field is
// decoded on a best-effort basis; a value of an unexpected type is left at its
// zero value rather than failing the resolution.
func decodeDescriptor(repoID, endpoint string, body []byte) (*Descriptor, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, &Error{
			Kind:   KindMalformedDescriptor,
			RepoID: repoID,
			URL:    endpoint,
			Detail: "decode json",
			Err:    err,
		}
	}
	features, ok := top["features"]
	if !ok || len(features) == 0 || string(features) == "null" {
		return nil, &Error{
			Kind:   KindMalformedDescriptor,
			RepoID: repoID,
			URL:    endpoint,
			Err:    errMissingFeatures,
		}
	}

	desc := &Descriptor{
		CodebaseVersion: declaredVersion(top["codebase_version"]),
		Splits:          decodeSplits(top["splits"]),
	}
	decodeField(top["robot_type"], &desc.RobotType)
	decodeField(top["data_path"], &desc.DataPath)
	decodeField(top["video_path"], &desc.VideoPath)
	decodeField(top["features"], &desc.Features)
	decodeField(top["fps"], &desc.FPS)
	decodeField(top["data_files_size_in_mb"], &desc.DataFilesSizeInMB)
	decodeField(top["video_files_size_in_mb"], &desc.VideoFilesSizeInMB)
	decodeCount(top["total_episodes"], &desc.TotalEpisodes)
	decodeCount(top["total_frames"], &desc.TotalFrames)
	decodeCount(top["total_tasks"], &desc.TotalTasks)
	decodeCount(top["total_videos"], &desc.TotalVideos)
	decodeCount(top["total_chunks"], &desc.TotalChunks)
	decodeCount(top["chunks_size"], &desc.ChunksSize)
	return desc, nil
}

// declaredVersion returns the codebase_version string. Non-string values are
// kept as their JSON text so the validator can report them.
func declaredVersion(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var version string
	if err := json.Unmarshal(raw, &version); err == nil {
		return version
	}
	return strings.TrimSpace(string(raw))
}

func decodeField[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var value T
	if err := json.Unmarshal(raw, &value); err == nil {
		*dst = value
	}
}

// decodeCount accepts any integral JSON number, including exponent forms
// such as 2.5e4.
func decodeCount(raw json.RawMessage, dst *int64) {
	var f float64
	decodeField(raw, &f)
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		*dst = int64(f)
	}
}

// decodeSplits keeps the entries whose range is a string.
func decodeSplits(raw json.RawMessage) map[string]string {
	var entries map[string]json.RawMessage
	decodeField(raw, &entries)
	if len(entries) == 0 {
		return nil
	}
	splits := make(map[string]string, len(entries))
	for name, value := range entries {
		var r string
		if err := json.Unmarshal(value, &r); err == nil {
			splits[name] = r
		}
	}
	return splits
}
