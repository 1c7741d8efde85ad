package engine

import (
	"testing"

	"github.com/sm48337/wargame/internal/game"
)

func TestSeedMarketPool_OneCopyPerRarityPoint(t *testing.T) {
	board := testBoard()
	SeedMarketPool(board)

	want := 0
	for _, spec := range AssetCatalog {
		want += spec.Rarity
	}
	if len(board.BlackMarketPool) != want {
		t.Fatalf("pool size = %d, want %d", len(board.BlackMarketPool), want)
	}
}

func TestDrawMarketAsset_MovesFromPoolToMarket(t *testing.T) {
	board := testBoard()
	board.BlackMarketPool = []string{AssetStuxnet, AssetEducation}
	rng := &scriptedRNG{picks: []int{1}}

	DrawMarketAsset(board, rng)

	if len(board.BlackMarketPool) != 1 || board.BlackMarketPool[0] != AssetStuxnet {
		t.Fatalf("pool after draw = %v", board.BlackMarketPool)
	}
	if len(board.BlackMarket) != 1 || board.BlackMarket[0].Asset != AssetEducation {
		t.Fatalf("market after draw = %v", board.BlackMarket)
	}
	if board.BlackMarket[0].HasBid {
		t.Fatalf("fresh row must carry no standing bid")
	}
}

func TestResolveMarket_BidDebitedImmediately(t *testing.T) {
	g := newTestGame()
	g.BoardState.BlackMarket = []game.MarketItem{{Asset: AssetStuxnet}}
	g.PlayerInputs = map[string]string{"bm-bid-0": "2"}
	tc := newTurnContext(g, &scriptedRNG{})

	tc.resolveMarket()

	item := g.BoardState.BlackMarket[0]
	if item.Bid != 2 || !item.HasBid {
		t.Fatalf("standing bid not recorded: %+v", item)
	}
	if got := g.BoardState.Entity(game.SCS).Resource; got != 1 {
		t.Fatalf("scs resource = %d, want 1 (bid debited)", got)
	}
}

func TestResolveMarket_UncontestedBidAwardsAsset(t *testing.T) {
	g := newTestGame()
	g.BoardState.Turn = 1 // blue acting; red's standing bid is on the table
	g.BoardState.BlackMarket = []game.MarketItem{{Asset: AssetStuxnet, Bid: 2, HasBid: true}}
	tc := newTurnContext(g, &scriptedRNG{})

	tc.resolveMarket()

	if len(g.BoardState.BlackMarket) != 0 {
		t.Fatalf("awarded row must leave the market")
	}
	if !teamHoldsAsset(g.BoardState.Teams[game.Red], AssetStuxnet) {
		t.Fatalf("red's uncontested bid must win the asset")
	}
}

func TestResolveMarket_RaisedBidKeepsRowContested(t *testing.T) {
	g := newTestGame()
	g.BoardState.Turn = 1
	g.BoardState.BlackMarket = []game.MarketItem{{Asset: AssetStuxnet, Bid: 2, HasBid: true}}
	g.PlayerInputs = map[string]string{"bm-bid-0": "3"}
	tc := newTurnContext(g, &scriptedRNG{})

	tc.resolveMarket()

	if len(g.BoardState.BlackMarket) != 1 {
		t.Fatalf("contested row must stay on the market")
	}
	if got := g.BoardState.BlackMarket[0].Bid; got != 3 {
		t.Fatalf("standing bid = %d, want 3", got)
	}
	if got := g.BoardState.Entity(game.GCHQ).Resource; got != 0 {
		t.Fatalf("gchq resource = %d, want 0 (raise debited)", got)
	}
}

func TestResolveMarket_EmbargoedBidderCannotBid(t *testing.T) {
	g := newTestGame()
	g.BoardState.Entity(game.SCS).Traits.Embargoed = true
	g.BoardState.BlackMarket = []game.MarketItem{{Asset: AssetStuxnet}}
	g.PlayerInputs = map[string]string{"bm-bid-0": "2"}
	tc := newTurnContext(g, &scriptedRNG{})

	tc.resolveMarket()

	if g.BoardState.BlackMarket[0].HasBid {
		t.Fatalf("embargoed bidder must not place bids")
	}
	if got := g.BoardState.Entity(game.SCS).Resource; got != 3 {
		t.Fatalf("scs resource = %d, want 3", got)
	}
}
