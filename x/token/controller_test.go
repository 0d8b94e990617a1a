package token

import (
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
	"github.com/iov-one/gamechain/x/admin"
)

func TestCreate(t *testing.T) {
	owner := weavetest.NewAddress()
	db := store.MemStore()
	ctrl := NewController()

	first, err := ctrl.Create(db, owner, Params{Name: "Space Kill King", Symbol: "SKS"})
	assert.Nil(t, err)
	second, err := ctrl.Create(db, owner, Params{Name: " Space Kill King", Symbol: "SKK", Decimals: 6, MaxSupply: amount.MustParse("1000000000000000000000000000")})
	assert.Nil(t, err)
	if first.Equals(second) {
		t.Fatal("two tokens share the same address")
	}
	assert.Equal(t, TokenAddress(weavetest.SequenceID(1)), first)

	tok, err := ctrl.Token(db, first)
	assert.Nil(t, err)
	assert.Equal(t, "SKS", tok.Symbol)
	assert.Equal(t, uint32(DefaultDecimals), tok.Decimals)
	capped, _, err := tok.Cap()
	assert.Nil(t, err)
	assert.Equal(t, false, capped)

	tok, err = ctrl.Token(db, second)
	assert.Nil(t, err)
	assert.Equal(t, uint32(6), tok.Decimals)
	capped, maxSupply, err := tok.Cap()
	assert.Nil(t, err)
	assert.Equal(t, true, capped)
	assert.BigEqual(t, amount.MustParse("1000000000000000000000000000").Big(), maxSupply.Big())

	got, err := admin.NewRegistry().Owner(db, second)
	assert.Nil(t, err)
	assert.Equal(t, owner, got)

	_, err = ctrl.Create(db, owner, Params{Name: "", Symbol: "bad symbol"})
	assert.IsErr(t, errors.ErrEmpty, err)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestMintAndTransfer(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()
	db := store.MemStore()
	ctrl := NewController()

	tok, err := ctrl.Create(db, alice, Params{Name: "Space Kill King", Symbol: "SKS"})
	assert.Nil(t, err)

	assertBalance(t, ctrl, db, tok, alice, "0")

	assert.Nil(t, ctrl.Mint(db, tok, alice, amount.New(100)))
	assertBalance(t, ctrl, db, tok, alice, "100")
	assertSupply(t, ctrl, db, tok, "100")

	assert.Nil(t, ctrl.Transfer(db, tok, alice, bob, amount.New(30)))
	assertBalance(t, ctrl, db, tok, alice, "70")
	assertBalance(t, ctrl, db, tok, bob, "30")

	err = ctrl.Transfer(db, tok, bob, alice, amount.New(31))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	assertBalance(t, ctrl, db, tok, alice, "70")
	assertBalance(t, ctrl, db, tok, bob, "30")

	// Self transfer requires the funds but changes nothing.
	assert.Nil(t, ctrl.Transfer(db, tok, bob, bob, amount.New(30)))
	assertBalance(t, ctrl, db, tok, bob, "30")
	assert.IsErr(t, errors.ErrInsufficientAmount, ctrl.Transfer(db, tok, bob, bob, amount.New(31)))

	assert.IsErr(t, errors.ErrAmount, ctrl.Transfer(db, tok, alice, bob, amount.Zero()))
	assert.IsErr(t, errors.ErrAmount, ctrl.Mint(db, tok, alice, amount.Zero()))

	// Transfers preserve the supply.
	assertSupply(t, ctrl, db, tok, "100")

	unknown := weavetest.NewAddress()
	assert.IsErr(t, errors.ErrNotFound, ctrl.Mint(db, unknown, alice, amount.New(1)))
	assert.IsErr(t, errors.ErrNotFound, ctrl.Transfer(db, unknown, alice, bob, amount.New(1)))
}

func TestMintOverflow(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()
	db := store.MemStore()
	ctrl := NewController()

	tok, err := ctrl.Create(db, alice, Params{Name: "Space Kill King", Symbol: "SKS"})
	assert.Nil(t, err)

	assert.Nil(t, ctrl.Mint(db, tok, alice, amount.Max))
	assert.IsErr(t, errors.ErrOverflow, ctrl.Mint(db, tok, bob, amount.New(1)))
	assertBalance(t, ctrl, db, tok, bob, "0")
	assertSupply(t, ctrl, db, tok, amount.Max.String())
}

func TestSupplyCap(t *testing.T) {
	const cap27 = "1000000000000000000000000000"

	cases := map[string]struct {
		mints    []amount.Amount
		wantErrs []*errors.Error
		want     string
	}{
		"mint up to the cap": {
			mints:    []amount.Amount{amount.MustParse(cap27)},
			wantErrs: []*errors.Error{nil},
			want:     cap27,
		},
		"cap plus one is rejected": {
			mints:    []amount.Amount{amount.MustParse("1000000000000000000000000001")},
			wantErrs: []*errors.Error{ErrSupplyCapExceeded},
			want:     "0",
		},
		"a full token cannot mint more": {
			mints:    []amount.Amount{amount.MustParse(cap27), amount.New(1)},
			wantErrs: []*errors.Error{nil, ErrSupplyCapExceeded},
			want:     cap27,
		},
		"several mints reach the cap": {
			mints: []amount.Amount{
				amount.MustParse("600000000000000000000000000"),
				amount.MustParse("400000000000000000000000001"),
				amount.MustParse("400000000000000000000000000"),
			},
			wantErrs: []*errors.Error{nil, ErrSupplyCapExceeded, nil},
			want:     cap27,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			owner := weavetest.NewAddress()
			db := store.MemStore()
			ctrl := NewController()
			tok, err := ctrl.Create(db, owner, Params{
				Name:      " Space Kill King",
				Symbol:    "SKK",
				MaxSupply: amount.MustParse(cap27),
			})
			assert.Nil(t, err)

			for i, m := range tc.mints {
				if err := ctrl.Mint(db, tok, owner, m); !tc.wantErrs[i].Is(err) {
					t.Fatalf("mint %d: unexpected error: %+v", i, err)
				}
			}
			assertSupply(t, ctrl, db, tok, tc.want)
			assertBalance(t, ctrl, db, tok, owner, tc.want)
		})
	}
}

func assertBalance(t testing.TB, ctrl BaseController, db gamechain.ReadOnlyKVStore, tok, account gamechain.Address, want string) {
	t.Helper()
	got, err := ctrl.Balance(db, tok, account)
	assert.Nil(t, err)
	assert.BigEqual(t, amount.MustParse(want).Big(), got.Big())
}

func assertSupply(t testing.TB, ctrl BaseController, db gamechain.ReadOnlyKVStore, tok gamechain.Address, want string) {
	t.Helper()
	got, err := ctrl.TotalSupply(db, tok)
	assert.Nil(t, err)
	assert.BigEqual(t, amount.MustParse(want).Big(), got.Big())
}
