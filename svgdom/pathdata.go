package svgdom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var errParamMismatch = errors.New("param mismatch")

// pathScanner reads the numbers and commands of a path `d` attribute.
type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == ',' || unicode.IsSpace(rune(c)) {
			s.pos++
			continue
		}
		return
	}
}

func (s *pathScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.src)
}

// command returns the next command letter, or 0 if the next token is a number.
func (s *pathScanner) command() byte {
	s.skipSeparators()
	if s.pos >= len(s.src) {
		return 0
	}
	c := s.src[s.pos]
	if strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", c) >= 0 {
		s.pos++
		return c
	}
	return 0
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	i := s.pos
	if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
		i++
	}
	seenDot, seenDigit := false, false
	for i < len(s.src) {
		c := s.src[i]
		if c >= '0' && c <= '9' {
			seenDigit = true
		} else if c == '.' && !seenDot {
			seenDot = true
		} else {
			break
		}
		i++
	}
	if seenDigit && i < len(s.src) && (s.src[i] == 'e' || s.src[i] == 'E') {
		j := i + 1
		if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
			j++
		}
		if j < len(s.src) && s.src[j] >= '0' && s.src[j] <= '9' {
			for j < len(s.src) && s.src[j] >= '0' && s.src[j] <= '9' {
				j++
			}
			i = j
		}
	}
	if !seenDigit {
		return 0, fmt.Errorf("path data: expected number at offset %d", start)
	}
	s.pos = i
	return strconv.ParseFloat(s.src[start:i], 64)
}

// flag reads an arc flag, which may not be separated from what follows.
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("path data: expected flag at offset %d", s.pos)
}

func (s *pathScanner) numbers(out []float64) error {
	for i := range out {
		var err error
		if out[i], err = s.number(); err != nil {
			return err
		}
	}
	return nil
}

// pathExtent returns the bounding box of the path data `d`.
// As browsers do, rendering (and so the box) stops at the first error,
// which is returned along with the extent of what was read so far.
func pathExtent(d string) (Bounds, bool, error) {
	var (
		e            extent
		s            = pathScanner{src: d}
		cmd          byte
		curX, curY   float64
		startX       float64
		startY       float64
		ctrlX, ctrlY float64 // reflected control point for S and T
		lastCmd      byte
		args         [7]float64
	)
	for !s.done() {
		if c := s.command(); c != 0 {
			cmd = c
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			// numbers without a command to consume them
			b, ok := e.bounds()
			return b, ok, errParamMismatch
		}
		rel := cmd >= 'a'
		var offX, offY float64
		if rel {
			offX, offY = curX, curY
		}
		var err error
		switch cmd {
		case 'M', 'm':
			if err = s.numbers(args[:2]); err != nil {
				break
			}
			curX, curY = args[0]+offX, args[1]+offY
			startX, startY = curX, curY
			e.moveTo(point{curX, curY})
			// subsequent pairs are implicit line-to commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			if err = s.numbers(args[:2]); err != nil {
				break
			}
			curX, curY = args[0]+offX, args[1]+offY
			e.lineTo(point{curX, curY})
		case 'H', 'h':
			if err = s.numbers(args[:1]); err != nil {
				break
			}
			curX = args[0] + offX
			e.lineTo(point{curX, curY})
		case 'V', 'v':
			if err = s.numbers(args[:1]); err != nil {
				break
			}
			curY = args[0] + offY
			e.lineTo(point{curX, curY})
		case 'C', 'c':
			if err = s.numbers(args[:6]); err != nil {
				break
			}
			x1, y1 := args[0]+offX, args[1]+offY
			ctrlX, ctrlY = args[2]+offX, args[3]+offY
			curX, curY = args[4]+offX, args[5]+offY
			e.cubeTo(point{x1, y1}, point{ctrlX, ctrlY}, point{curX, curY})
		case 'S', 's':
			if err = s.numbers(args[:4]); err != nil {
				break
			}
			x1, y1 := curX, curY
			if strings.IndexByte("CcSs", lastCmd) >= 0 {
				x1, y1 = 2*curX-ctrlX, 2*curY-ctrlY
			}
			ctrlX, ctrlY = args[0]+offX, args[1]+offY
			curX, curY = args[2]+offX, args[3]+offY
			e.cubeTo(point{x1, y1}, point{ctrlX, ctrlY}, point{curX, curY})
		case 'Q', 'q':
			if err = s.numbers(args[:4]); err != nil {
				break
			}
			ctrlX, ctrlY = args[0]+offX, args[1]+offY
			curX, curY = args[2]+offX, args[3]+offY
			e.quadTo(point{ctrlX, ctrlY}, point{curX, curY})
		case 'T', 't':
			if err = s.numbers(args[:2]); err != nil {
				break
			}
			if strings.IndexByte("QqTt", lastCmd) >= 0 {
				ctrlX, ctrlY = 2*curX-ctrlX, 2*curY-ctrlY
			} else {
				ctrlX, ctrlY = curX, curY
			}
			curX, curY = args[0]+offX, args[1]+offY
			e.quadTo(point{ctrlX, ctrlY}, point{curX, curY})
		case 'A', 'a':
			if err = s.numbers(args[:3]); err != nil {
				break
			}
			var large, sweep bool
			if large, err = s.flag(); err != nil {
				break
			}
			if sweep, err = s.flag(); err != nil {
				break
			}
			if err = s.numbers(args[5:7]); err != nil {
				break
			}
			curX, curY = args[5]+offX, args[6]+offY
			e.arcTo(args[0], args[1], args[2], large, sweep, point{curX, curY})
		case 'Z', 'z':
			curX, curY = startX, startY
			e.current = point{curX, curY}
		}
		if err != nil {
			b, ok := e.bounds()
			return b, ok, err
		}
		lastCmd = cmd
	}
	b, ok := e.bounds()
	return b, ok, nil
}
