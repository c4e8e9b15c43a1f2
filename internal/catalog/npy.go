// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var npyMagic = []byte("\x93NUMPY")

var (
	errNotNpy         = errors.New("not a NumPy .npy file")
	errUnsupportedNpy = errors.New("unsupported .npy layout")
)

var (
	descrPattern   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	fortranPattern = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	shapePattern   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// npyHeader is the parsed array header dictionary.
type npyHeader struct {
	order    binary.ByteOrder
	itemSize int // 4 or 8
	fortran  bool
	shape    []int
}

// denseMatrix is a 2-D float32 array in row-major order.
type denseMatrix struct {
	rows, cols int
	data       []float32
}

func readNpyFile(path string) (*denseMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	return readNpy(bufio.NewReader(f))
}

// readNpy decodes a 2-D floating point array from NumPy format versions 1 to 3.
// float64 data is narrowed to float32 and Fortran-ordered data is transposed.
func readNpy(r io.Reader) (*denseMatrix, error) {
	hdr, err := readNpyHeader(r)
	if err != nil {
		return nil, err
	}
	if len(hdr.shape) != 2 {
		return nil, fmt.Errorf("%w: expected a 2-D array, got shape %v", errUnsupportedNpy, hdr.shape)
	}

	rows, cols := hdr.shape[0], hdr.shape[1]
	count := rows * cols
	if rows < 0 || cols < 0 || (cols != 0 && count/cols != rows) {
		return nil, fmt.Errorf("%w: invalid shape %v", errUnsupportedNpy, hdr.shape)
	}

	raw := make([]byte, count*hdr.itemSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("truncated array data (want %d values): %w", count, err)
	}

	values := make([]float32, count)
	for i := range values {
		chunk := raw[i*hdr.itemSize : (i+1)*hdr.itemSize]
		if hdr.itemSize == 4 {
			values[i] = math.Float32frombits(hdr.order.Uint32(chunk))
		} else {
			values[i] = float32(math.Float64frombits(hdr.order.Uint64(chunk)))
		}
	}

	if hdr.fortran {
		values = transpose(values, rows, cols)
	}

	return &denseMatrix{rows: rows, cols: cols, data: values}, nil
}

func readNpyHeader(r io.Reader) (*npyHeader, error) {
	prefix := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotNpy, err)
	}
	if !bytes.Equal(prefix[:len(npyMagic)], npyMagic) {
		return nil, errNotNpy
	}

	var headerLen int
	switch major := prefix[len(npyMagic)]; major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("read header length: %w", err)
		}
		headerLen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("read header length: %w", err)
		}
		headerLen = int(n)
	default:
		return nil, fmt.Errorf("%w: format version %d", errUnsupportedNpy, major)
	}

	raw := make([]byte, headerLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return parseNpyHeader(string(raw))
}

func parseNpyHeader(dict string) (*npyHeader, error) {
	hdr := &npyHeader{}

	m := descrPattern.FindStringSubmatch(dict)
	if m == nil {
		return nil, fmt.Errorf("%w: header has no descr", errUnsupportedNpy)
	}
	switch m[1] {
	case "<f4":
		hdr.order, hdr.itemSize = binary.LittleEndian, 4
	case ">f4":
		hdr.order, hdr.itemSize = binary.BigEndian, 4
	case "<f8":
		hdr.order, hdr.itemSize = binary.LittleEndian, 8
	case ">f8":
		hdr.order, hdr.itemSize = binary.BigEndian, 8
	default:
		return nil, fmt.Errorf("%w: dtype %q", errUnsupportedNpy, m[1])
	}

	m = fortranPattern.FindStringSubmatch(dict)
	if m == nil {
		return nil, fmt.Errorf("%w: header has no fortran_order", errUnsupportedNpy)
	}
	hdr.fortran = m[1] == "True"

	m = shapePattern.FindStringSubmatch(dict)
	if m == nil {
		return nil, fmt.Errorf("%w: header has no shape", errUnsupportedNpy)
	}
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, err := strconv.Atoi(strings.TrimSuffix(part, "L"))
		if err != nil || dim < 0 {
			return nil, fmt.Errorf("%w: bad shape dimension %q", errUnsupportedNpy, part)
		}
		hdr.shape = append(hdr.shape, dim)
	}

	return hdr, nil
}

// transpose converts column-major values of a rows x cols array to row-major.
func transpose(src []float32, rows, cols int) []float32 {
	dst := make([]float32, len(src))
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			dst[i*cols+j] = src[j*rows+i]
		}
	}
	return dst
}
