package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajwerner/llrb"
)

const defaultCount = 10000

// probeKeys are deleted repeatedly before the final sweep; only the first
// deletion of each can succeed.
var probeKeys = []struct {
	key     int64
	repeats int
}{
	{0, 1},
	{500, 3},
	{631, 2},
}

type demoOptions struct {
	count    int64
	verbose  bool
	dump     bool
	maxNodes int
	logger   *slog.Logger
}

type demoResult struct {
	inserted      int64
	insertFailed  int64
	found         bool
	deleted       int64
	notFound      int64
	height        int
	levels        [][]llrb.Entry
	remaining     int
	releasedClean bool
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runDemo(opts demoOptions) (demoResult, error) {
	var res demoResult

	logger := opts.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := llrb.DefaultConfig()
	cfg.MaxNodes = opts.maxNodes
	tree := llrb.New(cfg)

	for key := range opts.count {
		_, err := tree.Insert(key, key)
		if err != nil {
			if !errors.Is(err, llrb.ErrAllocationFailure) {
				return res, fmt.Errorf("insert %d: %w", key, err)
			}

			res.insertFailed++

			logger.Debug("insert failed", "key", key, "error", err)

			continue
		}

		res.inserted++
	}

	logger.Info("tree built", "entries", tree.Len(), "height", tree.Height())
	res.height = tree.Height()

	_, err := tree.Search(1)
	res.found = err == nil
	logger.Debug("search", "key", 1, "found", res.found)

	del := func(key int64) error {
		value, err := tree.Delete(key)
		switch {
		case err == nil:
			res.deleted++
			logger.Debug("deleted", "key", key, "value", value)
		case errors.Is(err, llrb.ErrKeyNotFound):
			res.notFound++
			logger.Debug("cannot find key", "key", key)
		default:
			return fmt.Errorf("delete %d: %w", key, err)
		}

		return nil
	}

	for _, probe := range probeKeys {
		for range probe.repeats {
			if err := del(probe.key); err != nil {
				return res, err
			}
		}
	}

	if err := tree.Validate(); err != nil {
		return res, fmt.Errorf("after probes: %w", err)
	}

	if opts.dump {
		levels, err := tree.LevelOrder()
		if err != nil {
			return res, fmt.Errorf("level order: %w", err)
		}

		res.levels = levels
	}

	for key := range opts.count {
		if err := del(key); err != nil {
			return res, err
		}
	}

	for range tree.All() {
		res.remaining++
	}

	err = tree.Release()
	if err != nil {
		// The tree is unusable after a partial release; report and stop.
		return res, fmt.Errorf("release: %w", err)
	}

	res.releasedClean = tree.Live() == 0
	logger.Info("done", "deleted", res.deleted, "not_found", res.notFound)

	return res, nil
}
