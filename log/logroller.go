/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package log

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
)

var rollPattern = regexp.MustCompile(`^\.([0-9]+)$`)

// LogRoller is an io.Writer that writes to fileName, moving it aside to
// fileName.0, fileName.1, ... once it grows past fileMaxBytes, and keeping
// at most maxFiles rolled files.
type LogRoller struct {
	fileName     string
	fileMaxBytes uint
	maxFiles     uint

	// Format of a rolled file name, zero-padded to fit maxFiles.
	rollFormat string

	m        sync.Mutex
	file     *os.File
	fileSize uint
}

func NewLogRoller(fileName string, fileMaxBytes, maxFiles uint) *LogRoller {
	// 0 => 0 ; 1 => 1 ; 9 => 1 ; 99 => 2 ; 100 => 3
	var digits int
	if maxFiles > 0 {
		digits = int(math.Log10(float64(maxFiles))) + 1
	}

	return &LogRoller{
		fileName:     fileName,
		fileMaxBytes: fileMaxBytes,
		maxFiles:     maxFiles,
		rollFormat:   fmt.Sprintf("%s.%%0%dd", fileName, digits),
	}
}

func (lr *LogRoller) Write(p []byte) (int, error) {
	lr.m.Lock()
	defer lr.m.Unlock()

	if lr.file == nil {
		if err := lr.roll(); err != nil {
			return 0, err
		}
		f, err := os.Create(lr.fileName)
		if err != nil {
			return 0, err
		}
		lr.file = f
		lr.fileSize = 0
	}

	written, err := lr.file.Write(p)
	lr.fileSize += uint(written)
	if err != nil {
		return written, err
	}

	if lr.fileSize > lr.fileMaxBytes {
		lr.file.Close()
		lr.file = nil
	}
	return written, nil
}

// Close closes the current file. A later Write starts a new one.
func (lr *LogRoller) Close() error {
	lr.m.Lock()
	defer lr.m.Unlock()

	if lr.file == nil {
		return nil
	}
	err := lr.file.Close()
	lr.file = nil
	return err
}

// rolledSuffixes returns the numeric suffixes of existing rolled files,
// smallest first.
func (lr *LogRoller) rolledSuffixes() ([]uint64, error) {
	matches, err := filepath.Glob(lr.fileName + ".*")
	if err != nil {
		return nil, err
	}

	suffixes := make([]uint64, 0, len(matches))
	for _, match := range matches {
		m := rollPattern.FindStringSubmatch(match[len(lr.fileName):])
		if len(m) < 2 {
			continue
		}
		if n, err := strconv.ParseUint(m[1], 10, 16); err == nil {
			suffixes = append(suffixes, n)
		}
	}
	sort.Slice(suffixes, func(i, j int) bool { return suffixes[i] < suffixes[j] })
	return suffixes, nil
}

// roll shifts fileName.N to fileName.N+1, deleting whatever would exceed
// maxFiles, then moves fileName to fileName.0. Does nothing if fileName
// does not exist.
func (lr *LogRoller) roll() error {
	if _, err := os.Stat(lr.fileName); os.IsNotExist(err) {
		return nil
	}

	suffixes, err := lr.rolledSuffixes()
	if err != nil {
		return err
	}

	for i := len(suffixes) - 1; i >= 0; i-- {
		oldPath := fmt.Sprintf(lr.rollFormat, suffixes[i])
		if _, err := os.Stat(oldPath); err != nil {
			// Suffix was written with different padding.
			oldPath = fmt.Sprintf("%s.%d", lr.fileName, suffixes[i])
		}
		if uint(i+1) >= lr.maxFiles {
			if err := os.Remove(oldPath); err != nil {
				return err
			}
			continue
		}
		if err := os.Rename(oldPath, fmt.Sprintf(lr.rollFormat, suffixes[i]+1)); err != nil {
			return err
		}
	}

	if lr.maxFiles == 0 {
		// The existing file is truncated by os.Create.
		return nil
	}
	return os.Rename(lr.fileName, fmt.Sprintf(lr.rollFormat, 0))
}
