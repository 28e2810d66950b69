package ptxt

import (
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benmxavier/HElib/utils/bignum"
)

func TestParameters(t *testing.T) {

	lit := ParametersLiteral{P: 5, R: 3, Levels: 8, Slots: 4}

	t.Run("NewParametersFromLiteral", func(t *testing.T) {
		params, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		require.Equal(t, uint64(5), params.PlaintextPrime())
		require.Equal(t, 3, params.PlaintextExponent())
		require.Equal(t, bignum.NewInt(125), params.PlaintextModulus())
		require.Equal(t, 7, params.MaxLevel())
		require.Equal(t, 4, params.Slots())
		require.Equal(t, lit, params.ParametersLiteral())
	})

	t.Run("Validation", func(t *testing.T) {
		for _, bad := range []ParametersLiteral{
			{P: 0, R: 3, Levels: 8, Slots: 4},
			{P: 1, R: 3, Levels: 8, Slots: 4},
			{P: 6, R: 3, Levels: 8, Slots: 4},
			{P: 5, R: 0, Levels: 8, Slots: 4},
			{P: 5, R: 3, Levels: 0, Slots: 4},
			{P: 5, R: 3, Levels: 8, Slots: 0},
		} {
			_, err := NewParametersFromLiteral(bad)
			require.Error(t, err, "%+v", bad)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		params, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		same, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		other, err := NewParametersFromLiteral(ParametersLiteral{P: 7, R: 3, Levels: 8, Slots: 4})
		require.NoError(t, err)
		require.True(t, params.Equal(&same))
		require.False(t, params.Equal(&other))
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		params, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)

		data, err := json.Marshal(params)
		require.NoError(t, err)

		var decoded Parameters
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.True(t, params.Equal(&decoded))

		// unmarshalling re-validates
		require.Error(t, json.Unmarshal([]byte(`{"p":4,"r":1,"levels":1,"slots":1}`), &decoded))
	})
}

func TestEncoder(t *testing.T) {

	params, err := NewParametersFromLiteral(ParametersLiteral{P: 5, R: 3, Levels: 8, Slots: 4})
	require.NoError(t, err)

	ecd := NewEncoder(params)

	t.Run("RoundTrip", func(t *testing.T) {
		ct := NewCiphertext(params, params.MaxLevel())
		require.NoError(t, ecd.Encode([]uint64{0, 1, 124, 1000}, ct))

		have := make([]uint64, params.Slots())
		require.NoError(t, ecd.Decode(ct, have))
		require.Equal(t, []uint64{0, 1, 124, 0}, have) // 1000 = 8 * 125
	})

	t.Run("ZeroPadding", func(t *testing.T) {
		ct := NewCiphertext(params, params.MaxLevel())
		require.NoError(t, ecd.Encode([]uint64{7, 7, 7, 7}, ct))
		require.NoError(t, ecd.Encode([]uint64{3}, ct))

		have := make([]uint64, params.Slots())
		require.NoError(t, ecd.Decode(ct, have))
		require.Equal(t, []uint64{3, 0, 0, 0}, have)
	})

	t.Run("TooManyValues", func(t *testing.T) {
		ct := NewCiphertext(params, params.MaxLevel())
		require.Error(t, ecd.Encode(make([]uint64, params.Slots()+1), ct))
		require.Error(t, ecd.Decode(ct, make([]uint64, params.Slots()+1)))
	})

	t.Run("ReducedPlaintextSpace", func(t *testing.T) {
		// encoding targets the current plaintext space of the receiver
		eval := NewEvaluator(params)
		ct := NewCiphertext(params, params.MaxLevel())
		require.NoError(t, eval.ReducePlaintextExponent(ct, 1))
		require.NoError(t, ecd.Encode([]uint64{7, 0, 0, 0}, ct))

		have := make([]uint64, params.Slots())
		require.NoError(t, ecd.Decode(ct, have))
		require.Equal(t, uint64(2), have[0])
	})
}

func TestEvaluator(t *testing.T) {

	params, err := NewParametersFromLiteral(ParametersLiteral{P: 5, R: 3, Levels: 8, Slots: 4})
	require.NoError(t, err)

	ecd := NewEncoder(params)
	eval := NewEvaluator(params)
	m := params.PlaintextModulus().Uint64()

	newCt := func(t *testing.T, values []uint64, level int) *Ciphertext {
		ct := NewCiphertext(params, level)
		require.NoError(t, ecd.Encode(values, ct))
		return ct
	}

	decode := func(t *testing.T, ct *Ciphertext) []uint64 {
		have := make([]uint64, params.Slots())
		require.NoError(t, ecd.Decode(ct, have))
		return have
	}

	t.Run(fmt.Sprintf("Add/%s", params), func(t *testing.T) {
		op0 := newCt(t, []uint64{0, 1, 124, 60}, 7)
		op1 := newCt(t, []uint64{0, 124, 124, 70}, 5)
		require.NoError(t, eval.Add(op0, op1))
		require.Equal(t, []uint64{0, 0, 123, 5}, decode(t, op0))
		require.Equal(t, 5, op0.Level()) // aligned down
		require.Equal(t, 3, op0.PlaintextExponent())
	})

	t.Run(fmt.Sprintf("Sub/%s", params), func(t *testing.T) {
		op0 := newCt(t, []uint64{0, 1, 3, 60}, 7)
		op1 := newCt(t, []uint64{0, 2, 1, 70}, 7)
		require.NoError(t, eval.Sub(op0, op1))
		require.Equal(t, []uint64{0, 124, 2, 115}, decode(t, op0))
	})

	t.Run(fmt.Sprintf("AddScalar/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 1, 124, 60}, 7)
		require.NoError(t, eval.AddScalar(op, big.NewInt(-2)))
		require.Equal(t, []uint64{123, 124, 122, 58}, decode(t, op))
		require.Equal(t, 7, op.Level())
	})

	t.Run(fmt.Sprintf("MulNew/%s", params), func(t *testing.T) {
		op0 := newCt(t, []uint64{0, 1, 124, 60}, 7)
		op1 := newCt(t, []uint64{3, 3, 3, 3}, 4)
		res, err := eval.MulNew(op0, op1)
		require.NoError(t, err)
		require.Equal(t, []uint64{0, 3, 122, 55}, decode(t, res))
		require.Equal(t, 3, res.Level())

		// operands untouched
		require.Equal(t, 7, op0.Level())
		require.Equal(t, []uint64{0, 1, 124, 60}, decode(t, op0))

		_, err = eval.MulNew(newCt(t, []uint64{1}, 0), op1)
		require.Error(t, err)
	})

	t.Run(fmt.Sprintf("MulScalarNew/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 1, 124, 60}, 7)
		res, err := eval.MulScalarNew(op, big.NewInt(-2))
		require.NoError(t, err)
		require.Equal(t, []uint64{0, m - 2, 2, m - 120}, decode(t, res))
		require.Equal(t, 7, res.Level())
	})

	t.Run(fmt.Sprintf("DivideByP/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 5, 120, 35}, 7)
		require.NoError(t, eval.DivideByP(op))
		require.Equal(t, []uint64{0, 1, 24, 7}, decode(t, op))
		require.Equal(t, 6, op.Level())
		require.Equal(t, 2, op.PlaintextExponent())

		require.NoError(t, eval.DivideByP(op))
		require.Equal(t, 1, op.PlaintextExponent())

		// plaintext space p^1 cannot shrink further
		require.Error(t, eval.DivideByP(op))

		// no level left
		require.Error(t, eval.DivideByP(newCt(t, []uint64{5}, 0)))
	})

	t.Run(fmt.Sprintf("ReducePlaintextExponent/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 1, 124, 60}, 7)
		require.NoError(t, eval.ReducePlaintextExponent(op, 1))
		require.Equal(t, 1, op.PlaintextExponent())
		require.Equal(t, 7, op.Level())
		require.Equal(t, []uint64{0, 1, 4, 0}, decode(t, op))

		require.Error(t, eval.ReducePlaintextExponent(op, 0))
		require.Error(t, eval.ReducePlaintextExponent(op, 2)) // cannot grow back
	})

	t.Run(fmt.Sprintf("DropLevel/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 1, 124, 60}, 7)
		eval.DropLevel(op, 3)
		require.Equal(t, 4, op.Level())
		require.Equal(t, []uint64{0, 1, 124, 60}, decode(t, op))

		require.Panics(t, func() { eval.DropLevel(op, 5) })
		require.Panics(t, func() { eval.DropLevel(op, -1) })
	})

	t.Run(fmt.Sprintf("CopyNew/%s", params), func(t *testing.T) {
		op := newCt(t, []uint64{0, 1, 124, 60}, 7)
		cpy := eval.CopyNew(op)
		require.NoError(t, eval.AddScalar(cpy, big.NewInt(1)))
		require.Equal(t, []uint64{0, 1, 124, 60}, decode(t, op))
		require.Equal(t, []uint64{1, 2, 0, 61}, decode(t, cpy))
	})

	t.Run(fmt.Sprintf("SlotMismatch/%s", params), func(t *testing.T) {
		small, err := NewParametersFromLiteral(ParametersLiteral{P: 5, R: 3, Levels: 8, Slots: 2})
		require.NoError(t, err)
		op0 := newCt(t, []uint64{1, 2, 3, 4}, 7)
		op1 := NewCiphertext(small, 7)
		require.Error(t, eval.Add(op0, op1))
		_, err = eval.MulNew(op0, op1)
		require.Error(t, err)
	})
}
