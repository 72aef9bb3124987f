package carve

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// pgmMagic identifies the plain-text (ASCII) greyscale netpbm encoding.
const pgmMagic = "P2"

var (
	// ErrFormat is returned when the raster header or pixel data
	// cannot be parsed.
	ErrFormat = errors.New("invalid pgm format")

	// ErrRange is returned when a pixel value falls outside the
	// declared [0, maxValue] interval.
	ErrRange = errors.New("pixel value out of range")
)

// DecodePGM parses a plain-text greyscale raster from r into an
// intensity grid and returns it together with the declared maximum
// pixel value.
//
// The expected layout is the P2 netpbm format:
//
//	P2                      ; magic token
//	# Created by IrfanView  ; single optional comment line
//	y x                     ; columns by rows
//	255                     ; upper bound on pixel values
//	...                     ; rows*columns whitespace separated values
func DecodePGM(r io.Reader) (Grid, int, error) {
	br := bufio.NewReader(r)

	magic, err := readHeaderLine(br)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read the raster header")
	}
	if magic != pgmMagic {
		return nil, 0, errors.Wrapf(ErrFormat, "file format was read as %q, while the only supported format is %q", magic, pgmMagic)
	}

	dims, err := readHeaderLine(br)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read the raster dimensions")
	}
	// A single optional comment line may directly follow the magic token.
	if strings.HasPrefix(dims, "#") {
		dims, err = readHeaderLine(br)
		if err != nil {
			return nil, 0, errors.Wrap(err, "could not read the raster dimensions")
		}
	}

	fields := strings.Fields(dims)
	if len(fields) != 2 {
		return nil, 0, errors.Wrapf(ErrFormat, "malformed dimension line %q, expected two whitespace separated integers", dims)
	}
	cols, errc := strconv.Atoi(fields[0])
	rows, errr := strconv.Atoi(fields[1])
	if errc != nil || errr != nil || cols <= 0 || rows <= 0 {
		return nil, 0, errors.Wrapf(ErrFormat, "a problem occurred in reading the raster dimensions from %q", dims)
	}

	maxLine, err := readHeaderLine(br)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not read the maximum pixel value")
	}
	maxValue, err := strconv.Atoi(maxLine)
	if err != nil || maxValue <= 0 {
		return nil, 0, errors.Wrapf(ErrFormat, "unparsable maximum pixel value %q", maxLine)
	}

	scanner := bufio.NewScanner(br)
	scanner.Split(bufio.ScanWords)

	img := make(Grid, 0, rows)
	for i := 0; i < rows; i++ {
		row := make([]int, 0, cols)
		for j := 0; j < cols; j++ {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, 0, errors.Wrap(err, "could not read the pixel data")
				}
				return nil, 0, errors.Wrapf(ErrFormat, "unexpected end of pixel data at row %d, column %d", i, j)
			}
			px, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return nil, 0, errors.Wrapf(ErrFormat, "unparsable pixel value %q at row %d, column %d", scanner.Text(), i, j)
			}
			if px < 0 || px > maxValue {
				return nil, 0, errors.Wrapf(ErrRange, "pixel value %d falls outside the acceptable range of [0, %d]", px, maxValue)
			}
			row = append(row, px)
		}
		img = append(img, row)
	}
	return img, maxValue, nil
}

// readHeaderLine returns the next line of the header with the
// surrounding whitespace trimmed.
func readHeaderLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
