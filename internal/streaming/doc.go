// Package streaming provides response writer helpers for the media
// streamer. The byte counting here feeds the per-kind bytes-served
// metrics without interfering with range handling.
package streaming
