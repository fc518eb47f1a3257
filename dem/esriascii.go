package dem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadEsriASCII parses an ESRI ASCII Grid (.asc). The header accepts both
// the corner (xllcorner/yllcorner) and center (xllcenter/yllcenter) origin
// conventions; nodata_value is optional. Values follow row-major, north to
// south, whitespace separated.
func ReadEsriASCII(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	}

	var (
		ncols, nrows               int
		xll, yll, cellSize, noData float64
		haveCols, haveRows         bool
		haveX, haveY, haveCell     bool
		haveNoData                 bool
		xCenter, yCenter           bool

		firstValue float64
		haveFirst  bool
	)

	for {
		token, ok := next()
		if !ok {
			return nil, ErrIncompleteHeader
		}

		// The first token that parses as a number is the first data value.
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			firstValue = v
			haveFirst = true
			break
		}

		valueToken, ok := next()
		if !ok {
			return nil, ErrIncompleteHeader
		}
		value, err := strconv.ParseFloat(valueToken, 64)
		if err != nil {
			return nil, fmt.Errorf("dem: bad header value %q for %q", valueToken, token)
		}

		switch strings.ToLower(token) {
		case "ncols":
			ncols, haveCols = int(value), true
		case "nrows":
			nrows, haveRows = int(value), true
		case "xllcorner":
			xll, haveX = value, true
		case "xllcenter":
			xll, haveX, xCenter = value, true, true
		case "yllcorner":
			yll, haveY = value, true
		case "yllcenter":
			yll, haveY, yCenter = value, true, true
		case "cellsize":
			cellSize, haveCell = value, true
		case "nodata_value":
			noData, haveNoData = value, true
		default:
			return nil, fmt.Errorf("dem: unknown header field %q", token)
		}
	}

	if !haveCols || !haveRows || !haveX || !haveY || !haveCell {
		return nil, ErrIncompleteHeader
	}
	if ncols <= 0 || nrows <= 0 {
		return nil, ErrBadDimensions
	}
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}

	left := xll
	if xCenter {
		left -= cellSize / 2
	}
	bottom := yll
	if yCenter {
		bottom -= cellSize / 2
	}
	top := bottom + float64(nrows)*cellSize

	grid := NewGrid(ncols, nrows, left, top, cellSize)
	if haveNoData {
		grid.SetNoData(noData)
	}

	read := 0
	validCells := 0
	store := func(v float64) {
		grid.Data[read/ncols][read%ncols] = v
		if !haveNoData || v != noData {
			validCells++
		}
		read++
	}

	if haveFirst {
		store(firstValue)
	}
	for read < ncols*nrows {
		token, ok := next()
		if !ok {
			return nil, ErrShortData
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("dem: bad data value %q at index %d", token, read)
		}
		store(v)
	}

	if validCells == 0 {
		return nil, ErrAllNoData
	}

	return grid, nil
}

// OpenEsriASCII reads an ESRI ASCII Grid from a file.
func OpenEsriASCII(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dem: %w", err)
	}
	defer f.Close()

	grid, err := ReadEsriASCII(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return grid, nil
}
