package game

const (
	merchantOffers   = 3
	merchantMinValue = 2
	merchantValueSet = 5 // offers are worth merchantMinValue..merchantMinValue+4
)

const (
	merchantActionBuy   = "buy"
	merchantActionLeave = "leave"
)

var merchantOfferTypes = []CardType{CardWeapon, CardShield, CardPotion}

// merchantTokenSlot returns the table slot holding a merchant card, or -1.
func merchantTokenSlot(st *GameState) int {
	for i, c := range st.EnemySlots {
		if c != nil && c.Type == CardMerchant {
			return i
		}
	}
	return -1
}

// openMerchant starts the merchant event for the token at slot: three random
// offers and a leave token are laid over the table.
func (e *Engine) openMerchant(st *GameState, slot int) {
	m := &MerchantState{IsActive: true, BlockedSlotIndex: slot}
	for i := 0; i < merchantOffers; i++ {
		t := merchantOfferTypes[intn(e.Rng, len(merchantOfferTypes))]
		value := merchantMinValue + intn(e.Rng, merchantValueSet)
		m.OverlaySlots[i] = &Card{
			ID:                st.nextCardID(),
			Type:              CardMerchant,
			Value:             value,
			Icon:              defaultIcons[t],
			MerchantAction:    merchantActionBuy,
			MerchantOfferType: t,
			MerchantPrice:     value + 1,
		}
	}
	m.OverlaySlots[merchantOffers] = &Card{
		ID:             st.nextCardID(),
		Type:           CardMerchant,
		Icon:           "🚪",
		MerchantAction: merchantActionLeave,
	}
	st.Merchant = m
	e.log(st, codeMerchantCame)
}

func (e *Engine) merchantBuy(st *GameState, a MerchantBuy) *rejection {
	if !st.MerchantActive() {
		return reject(codeMerchantOffer)
	}
	idx := -1
	for i, c := range st.Merchant.OverlaySlots {
		if c != nil && c.ID == a.OfferID && c.MerchantAction == merchantActionBuy {
			idx = i
			break
		}
	}
	if idx < 0 {
		return reject(codeMerchantOffer)
	}
	target := st.slot(a.TargetHand)
	if rej := emptySlot(target); rej != nil {
		return rej
	}
	offer := st.Merchant.OverlaySlots[idx]
	if st.Player.Coins < offer.MerchantPrice {
		return reject(codeMerchantCoins)
	}

	st.Player.Coins -= offer.MerchantPrice
	st.Merchant.OverlaySlots[idx] = nil
	target.Card = &Card{
		ID:    offer.ID,
		Type:  offer.MerchantOfferType,
		Value: offer.Value,
		Icon:  offer.Icon,
	}
	e.log(st, codeMerchantBought, offer.MerchantPrice)
	return nil
}

// merchantLeave ends the event. Without a merchant it does nothing at all,
// so leaving twice equals leaving once.
func (e *Engine) merchantLeave(st *GameState) *rejection {
	if st.Merchant == nil {
		return silent
	}
	if i := st.Merchant.BlockedSlotIndex; i >= 0 && i < TableSize {
		if c := st.EnemySlots[i]; c != nil && c.Type == CardMerchant {
			st.discard(c)
			st.EnemySlots[i] = nil
		}
	}
	for _, c := range st.Merchant.OverlaySlots {
		st.discard(c)
	}
	st.Merchant = nil
	e.log(st, codeMerchantLeft)
	return nil
}
