package board

// Apply mutates the position by enacting move m. The caller is
// responsible for m being legal; Apply does not check.
func (p *Position) Apply(m Move) {
	mover := p.At(m.From)

	// 1. Castling-right updates.
	if mover.Kind == King {
		if mover.Color == White {
			p.WhiteShortCastle = false
			p.WhiteLongCastle = false
		} else {
			p.BlackShortCastle = false
			p.BlackLongCastle = false
		}
	}
	if mover.Kind == Rook {
		homeRank := Rank1
		if mover.Color == Black {
			homeRank = Rank8
		}
		if m.From.Rank == homeRank {
			switch m.From.File {
			case FileA:
				if mover.Color == White {
					p.WhiteLongCastle = false
				} else {
					p.BlackLongCastle = false
				}
			case FileH:
				if mover.Color == White {
					p.WhiteShortCastle = false
				} else {
					p.BlackShortCastle = false
				}
			}
		}
	}

	// 2. En-passant capture: pawn changes file onto an empty square.
	if mover.Kind == Pawn && m.From.File != m.To.File && p.At(m.To).IsEmpty() {
		capturedSq := NewSquare(m.To.File.Index(), m.From.Rank.Index())
		p.Set(capturedSq, Piece{})
	}

	// 3. Relocate piece from source to destination, then clear source.
	p.Set(m.To, mover)
	p.Set(m.From, Piece{})

	// 4. Castling rook swing.
	if mover.Kind == King {
		switch {
		case m.From == (Square{FileE, Rank1}) && m.To == (Square{FileG, Rank1}):
			p.Set(Square{FileF, Rank1}, p.At(Square{FileH, Rank1}))
			p.Set(Square{FileH, Rank1}, Piece{})
		case m.From == (Square{FileE, Rank1}) && m.To == (Square{FileC, Rank1}):
			p.Set(Square{FileD, Rank1}, p.At(Square{FileA, Rank1}))
			p.Set(Square{FileA, Rank1}, Piece{})
		case m.From == (Square{FileE, Rank8}) && m.To == (Square{FileG, Rank8}):
			p.Set(Square{FileF, Rank8}, p.At(Square{FileH, Rank8}))
			p.Set(Square{FileH, Rank8}, Piece{})
		case m.From == (Square{FileE, Rank8}) && m.To == (Square{FileC, Rank8}):
			p.Set(Square{FileD, Rank8}, p.At(Square{FileA, Rank8}))
			p.Set(Square{FileA, Rank8}, Piece{})
		}
	}

	// 5. Promotion.
	if m.IsPromotion() {
		p.Set(m.To, Piece{Color: mover.Color, Kind: m.Promotion})
	}

	// 6. En-passant target update. fromRank/toRank are plain signed
	// ints, so a black double-step's negative direction never underflows.
	p.EnPassant = nil
	if mover.Kind == Pawn {
		fromRank := m.From.Rank.Index()
		toRank := m.To.Rank.Index()
		homeRank := 1
		direction := 1
		if mover.Color == Black {
			homeRank = 6
			direction = -1
		}
		if fromRank == homeRank && toRank-fromRank == 2*direction {
			mid := NewSquare(m.From.File.Index(), fromRank+direction)
			p.EnPassant = &mid
		}
	}

	// 7. Flip side-to-move.
	p.SideToMove = p.SideToMove.Other()

	// 8. Increment move counter.
	p.MoveCounter++
}
