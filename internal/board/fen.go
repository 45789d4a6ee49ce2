package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses piece placement, side to move, castling rights,
// en-passant target, an accepted-but-ignored halfmove clock, and the
// fullmove number.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN %q needs at least 4 fields, got %d", fen, len(fields))
	}

	p := &Position{MoveCounter: 1}

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: FEN %q has invalid side to move %q", fen, fields[1])
	}

	if err := parseCastling(p, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: FEN %q has invalid en-passant target: %w", fen, err)
		}
		p.EnPassant = &sq
	}

	// fields[4], the halfmove clock, is accepted but ignored.

	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("board: FEN %q has invalid fullmove number: %w", fen, err)
		}
		p.MoveCounter = n
	}

	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: piece placement %q needs 8 ranks, got %d", placement, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d of %q", rank+1, placement)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceFromChar(c)
			if !ok {
				return fmt.Errorf("board: invalid piece character %q in %q", c, placement)
			}
			p.Set(NewSquare(file, rank), piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("board: rank %d of %q does not cover 8 files", rank+1, placement)
		}
	}
	return nil
}

func parseCastling(p *Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			p.WhiteShortCastle = true
		case 'Q':
			p.WhiteLongCastle = true
		case 'k':
			p.BlackShortCastle = true
		case 'q':
			p.BlackLongCastle = true
		default:
			return fmt.Errorf("board: invalid castling character %q in %q", castling[i], castling)
		}
	}
	return nil
}

// ToFEN emits the position as a FEN string. Emission mirrors the parse;
// the halfmove clock is always emitted as 0 since this module does not
// track it.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.At(NewSquare(file, rank))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	if p.EnPassant != nil {
		sb.WriteString(p.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.MoveCounter))

	return sb.String()
}

func (p *Position) castlingString() string {
	s := ""
	if p.WhiteShortCastle {
		s += "K"
	}
	if p.WhiteLongCastle {
		s += "Q"
	}
	if p.BlackShortCastle {
		s += "k"
	}
	if p.BlackLongCastle {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
