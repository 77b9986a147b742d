package grid

// Restrict averages each 2x2 block of fine cells into its coarse parent.
// The averaging is conservative: the interior mean is unchanged.
func Restrict(fine, coarse *ScalarField) {
	if fine.G.N != 2*coarse.G.N {
		panic("restriction requires a 2:1 grid pair")
	}
	var (
		nc = coarse.G.N
	)
	for I := 0; I < nc; I++ {
		for J := 0; J < nc; J++ {
			s := fine.At(2*I, 2*J) + fine.At(2*I+1, 2*J) +
				fine.At(2*I, 2*J+1) + fine.At(2*I+1, 2*J+1)
			coarse.Set(I, J, 0.25*s)
		}
	}
	coarse.ApplyBC()
}

// Prolong interpolates coarse values onto the fine grid bilinearly. Each
// fine cell blends its coarse parent with the two edge neighbors and the
// corner neighbor nearest the fine cell center (9-3-3-1 weights). The
// coarse ghost layer supplies the stencil at the walls.
func Prolong(coarse, fine *ScalarField) {
	if fine.G.N != 2*coarse.G.N {
		panic("prolongation requires a 2:1 grid pair")
	}
	var (
		nc = coarse.G.N
		m  = coarse.M
	)
	coarse.ApplyBC()
	for I := 0; I < nc; I++ {
		for J := 0; J < nc; J++ {
			c := m.At(I+1, J+1)
			for di := 0; di < 2; di++ {
				si := 2*di - 1 // -1 for the low fine cell, +1 for the high
				for dj := 0; dj < 2; dj++ {
					sj := 2*dj - 1
					v := (9*c +
						3*m.At(I+1+si, J+1) +
						3*m.At(I+1, J+1+sj) +
						m.At(I+1+si, J+1+sj)) / 16
					fine.Set(2*I+di, 2*J+dj, v)
				}
			}
		}
	}
	fine.ApplyBC()
}

// ProlongAdd is Prolong with the interpolant added into the fine field,
// the form used when applying multigrid corrections.
func ProlongAdd(coarse, fine *ScalarField) {
	var (
		nc = coarse.G.N
		m  = coarse.M
	)
	if fine.G.N != 2*nc {
		panic("prolongation requires a 2:1 grid pair")
	}
	coarse.ApplyBC()
	for I := 0; I < nc; I++ {
		for J := 0; J < nc; J++ {
			c := m.At(I+1, J+1)
			for di := 0; di < 2; di++ {
				si := 2*di - 1
				for dj := 0; dj < 2; dj++ {
					sj := 2*dj - 1
					v := (9*c +
						3*m.At(I+1+si, J+1) +
						3*m.At(I+1, J+1+sj) +
						m.At(I+1+si, J+1+sj)) / 16
					fine.Set(2*I+di, 2*J+dj, fine.At(2*I+di, 2*J+dj)+v)
				}
			}
		}
	}
	fine.ApplyBC()
}
