package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"
	"hissaback/pkg/voucher"

	"gorm.io/gorm"
)

// PayoutRunResult reports one batcher run.
type PayoutRunResult struct {
	PaidCount  int      `json:"paid_count"`
	Recipients []string `json:"recipients"`
}

// PayoutService batches eligible ledger entries into payouts:
// scan -> group by recipient -> settle each group in one transaction ->
// notify. Settlement of a group is atomic; notification is best-effort.
type PayoutService struct {
	ledgerRepo  *repository.LedgerRepository
	payoutRepo  *repository.PayoutRepository
	settingRepo *repository.SettingRepository
	notifier    Notifier
	minAmount   float64
	method      string
}

func NewPayoutService(
	ledgerRepo *repository.LedgerRepository,
	payoutRepo *repository.PayoutRepository,
	settingRepo *repository.SettingRepository,
	notifier Notifier,
	minAmount float64,
	method string,
) *PayoutService {
	return &PayoutService{
		ledgerRepo:  ledgerRepo,
		payoutRepo:  payoutRepo,
		settingRepo: settingRepo,
		notifier:    notifier,
		minAmount:   minAmount,
		method:      method,
	}
}

// minPayout reads the runtime override if one is set, else the configured floor.
func (s *PayoutService) minPayout() float64 {
	if s.settingRepo == nil {
		return s.minAmount
	}
	return s.settingRepo.GetFloat(domain.SettingMinPayoutAmount, s.minAmount)
}

// Run executes one batch. A run that finds nothing eligible returns
// paid_count=0 and writes nothing. When a concurrent run has already taken
// a group's entries, that group's transaction rolls back and the run moves
// on; an entry can only ever land in one payout.
func (s *PayoutService) Run(ctx context.Context) (*PayoutRunResult, error) {
	now := time.Now().UTC()
	eligible, err := s.ledgerRepo.ListEligible(now, s.minPayout())
	if err != nil {
		return nil, err
	}
	result := &PayoutRunResult{Recipients: []string{}}
	if len(eligible) == 0 {
		return result, nil
	}

	groups := make(map[string][]models.LedgerEntry)
	var order []string
	for _, e := range eligible {
		if _, seen := groups[e.UserID]; !seen {
			order = append(order, e.UserID)
		}
		groups[e.UserID] = append(groups[e.UserID], e)
	}

	for _, userID := range order {
		entries := groups[userID]
		payout, err := s.settle(userID, entries, now)
		if errors.Is(err, domain.ErrConflict) {
			// lost the race to a concurrent run; their payout covers these
			log.Printf("[payout] user %s already settled by a concurrent run", userID)
			continue
		}
		if err != nil {
			log.Printf("[payout] settle for user %s failed: %v", userID, err)
			continue
		}
		result.PaidCount++
		result.Recipients = append(result.Recipients, userID)
		s.notify(ctx, payout)
	}
	return result, nil
}

// settle creates the payout and flips its member entries to paid in a
// single transaction. Both commit together or neither is observable.
func (s *PayoutService) settle(userID string, entries []models.LedgerEntry, now time.Time) (*models.Payout, error) {
	var total float64
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		total += e.UserAmount
		ids = append(ids, e.ID)
	}
	idsJSON, _ := json.Marshal(ids)
	payout := &models.Payout{
		ID:          models.NewID("payout"),
		UserID:      userID,
		Amount:      total,
		Method:      s.method,
		VoucherCode: voucher.ForMethod(s.method),
		LedgerIDs:   string(idsJSON),
		PaidAt:      now,
	}
	err := s.ledgerRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.payoutRepo.CreateTx(tx, payout); err != nil {
			return err
		}
		return s.ledgerRepo.MarkPaid(tx, ids, payout.ID, now)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// notify tells the recipient about their voucher. Fire-and-forget: a
// failure here is logged and discarded, never unwinding the settlement.
func (s *PayoutService) notify(ctx context.Context, p *models.Payout) {
	if s.notifier == nil {
		return
	}
	msg := fmt.Sprintf("Your voucher %s for %.2f is ready!", p.VoucherCode, p.Amount)
	if err := s.notifier.Notify(ctx, p.UserID, msg); err != nil {
		log.Printf("[payout] notify %s failed: %v", p.UserID, err)
	}
}
