package db

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
)

// oneEther is 10^18 base units.
var oneEther = decimal.New(1, 18)

// Seed funds a handful of demo accounts and opens campaigns with a few
// contributions each. It goes through the ledger so every write is a
// regular, event-emitting call; the faucet must be enabled.
func Seed(ctx context.Context, ledger port.LedgerUseCase, campaigns int) ([]domain.Address, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	accounts := make([]domain.Address, 5)
	for i := range accounts {
		raw := make([]byte, 20)
		r.Read(raw)
		accounts[i] = domain.Address("0x" + hex.EncodeToString(raw))
		if _, err := ledger.Deposit(ctx, accounts[i], oneEther.Mul(decimal.NewFromInt(100))); err != nil {
			return nil, fmt.Errorf("fund %s: %w", accounts[i], err)
		}
	}

	for i := 1; i <= campaigns; i++ {
		creator := accounts[r.Intn(len(accounts))]
		req := port.StartCampaignReq{
			Description: fmt.Sprintf("Demo campaign %d", i),
			Goal:        oneEther.Mul(decimal.NewFromInt(int64(1 + r.Intn(10)))),
			Deadline:    time.Now().AddDate(0, 0, 1+r.Intn(30)),
		}
		id, _, err := ledger.StartCampaign(ctx, creator, req)
		if err != nil {
			return nil, fmt.Errorf("start campaign %d: %w", i, err)
		}
		for j := 0; j < 1+r.Intn(4); j++ {
			donor := accounts[r.Intn(len(accounts))]
			// 0.1 to 1.0 ether
			amount := oneEther.Div(decimal.NewFromInt(10)).Mul(decimal.NewFromInt(int64(1 + r.Intn(10))))
			if _, err = ledger.Contribute(ctx, donor, port.ContributeReq{CampaignID: id, Amount: amount, Value: amount}); err != nil {
				return nil, fmt.Errorf("contribute to %d: %w", id, err)
			}
		}
	}
	return accounts, nil
}
