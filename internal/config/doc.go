// Package config loads, normalizes, and validates lerobotviz configuration data.
//
// It supplies defaults matching the public artifact host, reads TOML files,
// and honours environment fallbacks (DATASET_URL, HF_TOKEN,
// HUGGING_FACE_HUB_TOKEN). FetcherConfig hands the result to the dataset
// package as explicit values so nothing downstream reads the environment.
package config
