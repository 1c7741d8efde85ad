package engine

import (
	"strconv"

	"github.com/sm48337/wargame/internal/game"
)

// SeedMarketPool fills the draw pool from the asset catalog, one copy per
// point of rarity.
func SeedMarketPool(board *game.BoardState) {
	pool := make([]string, 0, 32)
	for _, spec := range AssetCatalog {
		for i := 0; i < spec.Rarity; i++ {
			pool = append(pool, spec.ID)
		}
	}
	board.BlackMarketPool = pool
}

// DrawMarketAsset moves one random asset from the pool onto the visible
// market row with no standing bid.
func DrawMarketAsset(board *game.BoardState, rng RNG) {
	if len(board.BlackMarketPool) == 0 {
		return
	}
	i := rng.Pick(len(board.BlackMarketPool))
	asset := board.BlackMarketPool[i]
	board.BlackMarketPool = append(board.BlackMarketPool[:i], board.BlackMarketPool[i+1:]...)
	board.BlackMarket = append(board.BlackMarket, game.MarketItem{Asset: asset})
}

// marketBidder returns the entity that places bids for a side: scs for red,
// gchq for blue.
func (tc *turnContext) marketBidder() *game.Entity {
	if tc.active == game.Red {
		return tc.board.Teams[game.Red].Entity(game.SCS)
	}
	return tc.board.Teams[game.Blue].Entity(game.GCHQ)
}

// resolveMarket applies this turn's bids. A standing bid left uncontested
// (row had a bid, active team bids zero) awards the asset to the opposing
// team; a nonzero bid is debited immediately and becomes the new standing
// bid.
func (tc *turnContext) resolveMarket() {
	bidder := tc.marketBidder()
	canBid := !bidder.Traits.Embargoed && bidder.Traits.CannotBid == 0

	var removed []int
	for index := range tc.board.BlackMarket {
		item := &tc.board.BlackMarket[index]
		bid := 0
		if canBid {
			bid = atoi(tc.input("bm-bid-" + strconv.Itoa(index)))
			if bid < 0 {
				bid = 0
			}
		}
		spec, _ := AssetByID(item.Asset)
		switch {
		case item.HasBid && bid == 0:
			tc.log("Team "+titleColor(tc.other)+"'s bid for "+spec.Name+" was not contested - asset gained.", "action")
			other := tc.board.Teams[tc.other]
			other.Assets = append(other.Assets, item.Asset)
			removed = append(removed, index)
		case bid > 0:
			bidder.Resource -= bid
			item.Bid = bid
			item.HasBid = true
			tc.log("Team "+titleColor(tc.active)+" bid "+strconv.Itoa(bid)+" for "+spec.Name+".", "action")
		}
	}

	for i := len(removed) - 1; i >= 0; i-- {
		index := removed[i]
		tc.board.BlackMarket = append(tc.board.BlackMarket[:index], tc.board.BlackMarket[index+1:]...)
	}
}
