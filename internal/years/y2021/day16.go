package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"encoding/hex"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 16, Name: "Packet Decoder",
		New: func() solution.Solver { return &day16{} },
	})
}

type packet struct {
	version int
	typeID  int
	value   int
	sub     []packet
}

func (p packet) versionSum() int {
	sum := p.version
	for _, s := range p.sub {
		sum += s.versionSum()
	}

	return sum
}

func (p packet) eval() int {
	if p.typeID == 4 {
		return p.value
	}

	values := make([]int, len(p.sub))
	for i, s := range p.sub {
		values[i] = s.eval()
	}

	switch p.typeID {
	case 0:
		sum := 0
		for _, v := range values {
			sum += v
		}

		return sum
	case 1:
		product := 1
		for _, v := range values {
			product *= v
		}

		return product
	case 2:
		return minOf(values)
	case 3:
		return maxOf(values)
	case 5:
		return boolInt(values[0] > values[1])
	case 6:
		return boolInt(values[0] < values[1])
	default:
		return boolInt(values[0] == values[1])
	}
}

func minOf(values []int) int {
	out := values[0]
	for _, v := range values[1:] {
		out = min(out, v)
	}

	return out
}

func maxOf(values []int) int {
	out := values[0]
	for _, v := range values[1:] {
		out = max(out, v)
	}

	return out
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// bitReader reads big endian fields from a byte slice.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.data)*8 {
		return 0, fmt.Errorf("read of %d bits at %d overflows the transmission", n, r.pos)
	}

	v := 0
	for range n {
		bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}

	return v, nil
}

func (r *bitReader) packet() (packet, error) {
	var p packet
	var err error
	if p.version, err = r.read(3); err != nil {
		return p, err
	}
	if p.typeID, err = r.read(3); err != nil {
		return p, err
	}

	if p.typeID == 4 {
		for {
			group, err := r.read(5)
			if err != nil {
				return p, err
			}
			p.value = p.value<<4 | group&0xf
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return p, err
	}

	if lengthType == 0 {
		length, err := r.read(15)
		if err != nil {
			return p, err
		}
		end := r.pos + length
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return p, err
			}
			p.sub = append(p.sub, sub)
		}

		return p, nil
	}

	count, err := r.read(11)
	if err != nil {
		return p, err
	}
	for range count {
		sub, err := r.packet()
		if err != nil {
			return p, err
		}
		p.sub = append(p.sub, sub)
	}

	return p, nil
}

type day16 struct {
	root packet
}

func (d *day16) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid transmission: %w", err)
	}

	d.root, err = (&bitReader{data: data}).packet()

	return err
}

func (d *day16) Part1() any { return d.root.versionSum() }

func (d *day16) Part2() any { return d.root.eval() }
