package lco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraphstate/lco"
)

var realCodes = []lco.Code{lco.Pauli, lco.H, lco.S, lco.SqrtX, lco.HS, lco.SH}

func TestMultiplyTablesAreClosed(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.True(lco.MultiplyH(c).Valid(), "MultiplyH(%s) must stay in the real domain", c)
		req.True(lco.MultiplyS(c).Valid(), "MultiplyS(%s) must stay in the real domain", c)
		req.True(lco.MultiplyBySqrtX(c).Valid(), "MultiplyBySqrtX(%s) must stay in the real domain", c)
		req.True(lco.MultiplyByS(c).Valid(), "MultiplyByS(%s) must stay in the real domain", c)
	}
}

func TestHIsInvolution(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.Equal(c, lco.MultiplyH(lco.MultiplyH(c)), "H.H must be identity on %s", c)
	}
}

func TestSIsInvolutionModPauli(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.Equal(c, lco.MultiplyS(lco.MultiplyS(c)), "S.S must be identity mod Pauli on %s", c)
	}
}

func TestSqrtXIsInvolutionModPauli(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.Equal(c, lco.MultiplyBySqrtX(lco.MultiplyBySqrtX(c)), "sqrtX.sqrtX must be identity mod Pauli on %s", c)
	}
}

func TestMultiplyBySMatchesMultiplyS(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.Equal(lco.MultiplyS(c), lco.MultiplyByS(c))
	}
}

func TestCZIsolatedPreservesCodesAndAddsEdge(t *testing.T) {
	req := require.New(t)
	for _, a := range []lco.Code{lco.Pauli, lco.S} {
		for _, b := range []lco.Code{lco.Pauli, lco.S} {
			newA, newB, addEdge := lco.CZIsolated(a, b)
			req.Equal(a, newA)
			req.Equal(b, newB)
			req.True(addEdge)
		}
	}
}

func TestCZConnectedPreservesCodesAndRemovesEdge(t *testing.T) {
	req := require.New(t)
	for _, a := range []lco.Code{lco.Pauli, lco.S} {
		for _, b := range []lco.Code{lco.Pauli, lco.S} {
			newA, newB, edgeAfter := lco.CZConnected(a, b)
			req.Equal(a, newA)
			req.Equal(b, newB)
			req.False(edgeAfter)
		}
	}
}

func TestCZIsolatedPassesThroughFullDomain(t *testing.T) {
	req := require.New(t)
	for _, a := range realCodes {
		for _, b := range realCodes {
			newA, newB, addEdge := lco.CZIsolated(a, b)
			req.Equal(a, newA, "CZIsolated(%s,%s) must leave the first endpoint's code untouched", a, b)
			req.Equal(b, newB, "CZIsolated(%s,%s) must leave the second endpoint's code untouched", a, b)
			req.True(addEdge)
		}
	}
}

func TestCZConnectedPassesThroughFullDomain(t *testing.T) {
	req := require.New(t)
	for _, a := range realCodes {
		for _, b := range realCodes {
			newA, newB, edgeAfter := lco.CZConnected(a, b)
			req.Equal(a, newA)
			req.Equal(b, newB)
			req.False(edgeAfter)
		}
	}
}

func TestCZIsolatedThenConnectedIsInvolution(t *testing.T) {
	req := require.New(t)
	for _, a := range realCodes {
		for _, b := range realCodes {
			midA, midB, addEdge := lco.CZIsolated(a, b)
			req.True(addEdge)
			finalA, finalB, edgeAfter := lco.CZConnected(midA, midB)
			req.Equal(a, finalA)
			req.Equal(b, finalB)
			req.False(edgeAfter, "applying CZ twice must cancel the edge it added")
		}
	}
}

func TestCodeStringCoversRealAndReserved(t *testing.T) {
	req := require.New(t)
	for _, c := range realCodes {
		req.NotEqual("Reserved", c.String())
	}
	req.Equal("Reserved", lco.Code(6).String())
	req.Equal("Reserved", lco.Code(7).String())
}
