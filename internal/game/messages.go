package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Log codes. Each code is also the message key in the catalog below.
const (
	codeGameStarted    = "game.started"
	codeGameWon        = "game.won"
	codeGameLost       = "game.lost"
	codeUnknownAction  = "action.unknown"
	codeMerchantBusy   = "merchant.busy"
	codeCardNotFound   = "card.not_found"
	codeSlotOccupied   = "slot.occupied"
	codeSlotEmpty      = "slot.empty"
	codeSlotBlocked    = "slot.blocked"
	codeTakeForbidden  = "take.forbidden"
	codeTakeDone       = "take.done"
	codeMoveForbidden  = "move.forbidden"
	codeMoveDone       = "move.done"
	codeStealthBlocked = "stealth.blocked"
	codeSilenceBlocked = "silence.blocked"
	codeNoWeapon       = "attack.no_weapon"
	codeNoShield       = "attack.no_shield"
	codeBadSource      = "attack.bad_source"
	codeMonsterKilled  = "attack.kill"
	codeMonsterHit     = "attack.hit"
	codeBareHanded     = "attack.bare"
	codeShieldBlock    = "shield.block"
	codeStompShield    = "ability.stomp"
	codePotionHeal     = "potion.heal"
	codeNotPotion      = "potion.invalid"
	codeCoinCollected  = "coin.collect"
	codeNotCoin        = "coin.invalid"
	codeSellScream     = "sell.scream"
	codeSellEquipped   = "sell.equipped"
	codeSellSkull      = "sell.skull"
	codeSellForbidden  = "sell.forbidden"
	codeSellDone       = "sell.done"
	codeResetDenied    = "reset.denied"
	codeResetDone      = "reset.done"
	codeCurseLocked    = "curse.locked"
	codeCurseUnknown   = "curse.unknown"
	codeCurseActivated = "curse.activated"
	codeSpellUnknown   = "spell.unknown"
	codeSpellTarget    = "spell.wrong_target"
	codeSpellNoEffect  = "spell.no_effect"
	codeSpellCast      = "spell.cast"
	codeMerchantCame   = "merchant.arrived"
	codeMerchantBought = "merchant.bought"
	codeMerchantCoins  = "merchant.no_coins"
	codeMerchantOffer  = "merchant.offer_missing"
	codeMerchantLeft   = "merchant.left"
	codeGodMode        = "god.toggle"

	codeAmbush      = "ability.ambush"
	codeScavenger   = "ability.scavenger"
	codeCommission  = "ability.commission"
	codeBreach      = "ability.breach"
	codeDisarm      = "ability.disarm"
	codeBlessing    = "ability.blessing"
	codeGraveyard   = "ability.graveyard"
	codeLegacy      = "ability.legacy"
	codeTheft       = "ability.theft"
	codeBones       = "ability.bones"
	codeJunk        = "ability.junk"
	codeCorrosion   = "ability.corrosion"
	codeMiss        = "ability.miss"
	codeParasite    = "ability.parasite"
	codeCorpseeater = "ability.corpseeater"
	codeEscape      = "ability.escape"
)

// DefaultLanguage is the language of the combat log when none is configured.
var DefaultLanguage = language.Russian

var supportedLanguages = []language.Tag{language.Russian, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

// ParseLanguage picks the closest supported log language for s.
func ParseLanguage(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, _ := languageMatcher.Match(tag)
	return supportedLanguages[idx]
}

func init() {
	ru := language.Russian
	message.SetString(ru, codeGameStarted, "Новый забег: %d карт в колоде")
	message.SetString(ru, codeGameWon, "ПОБЕДА: подземелье зачищено")
	message.SetString(ru, codeGameLost, "ПОРАЖЕНИЕ: герой пал")
	message.SetString(ru, codeUnknownAction, "Неизвестное действие")
	message.SetString(ru, codeMerchantBusy, "Торговец ждёт: купите товар или уйдите")
	message.SetString(ru, codeCardNotFound, "Карта не найдена")
	message.SetString(ru, codeSlotOccupied, "Слот занят")
	message.SetString(ru, codeSlotEmpty, "Слот пуст")
	message.SetString(ru, codeSlotBlocked, "ПАУТИНА: рюкзак заблокирован")
	message.SetString(ru, codeTakeForbidden, "Эту карту нельзя взять")
	message.SetString(ru, codeTakeDone, "%s: в слот %s")
	message.SetString(ru, codeMoveForbidden, "Этот предмет нельзя переместить")
	message.SetString(ru, codeMoveDone, "Предмет перемещён")
	message.SetString(ru, codeStealthBlocked, "СКРЫТ")
	message.SetString(ru, codeSilenceBlocked, "МОЛЧАНИЕ: Магия заблокирована")
	message.SetString(ru, codeNoWeapon, "В руке нет оружия")
	message.SetString(ru, codeNoShield, "В руке нет щита")
	message.SetString(ru, codeBadSource, "Так атаковать нельзя")
	message.SetString(ru, codeMonsterKilled, "Монстр повержен: %d урона")
	message.SetString(ru, codeMonsterHit, "Монстр ранен: осталось %d HP")
	message.SetString(ru, codeBareHanded, "Бой без оружия: -%d HP")
	message.SetString(ru, codeShieldBlock, "Щит принял удар: -%d HP")
	message.SetString(ru, codeStompShield, "ТОПОТ: щит разбит")
	message.SetString(ru, codePotionHeal, "Лечение: +%d HP")
	message.SetString(ru, codeNotPotion, "Это не зелье")
	message.SetString(ru, codeCoinCollected, "+%d монет")
	message.SetString(ru, codeNotCoin, "Это не монета")
	message.SetString(ru, codeSellScream, "КРИК: торговля заблокирована")
	message.SetString(ru, codeSellEquipped, "Экипированный предмет нельзя продать")
	message.SetString(ru, codeSellSkull, "Череп из рюкзака не продать")
	message.SetString(ru, codeSellForbidden, "Эту карту нельзя продать")
	message.SetString(ru, codeSellDone, "Продано: +%d монет")
	message.SetString(ru, codeResetDenied, "Сбросить стол нельзя")
	message.SetString(ru, codeResetDone, "Стол сброшен: -%d HP")
	message.SetString(ru, codeCurseLocked, "Проклятие уже не выбрать")
	message.SetString(ru, codeCurseUnknown, "Неизвестное проклятие")
	message.SetString(ru, codeCurseActivated, "Проклятие: %s")
	message.SetString(ru, codeSpellUnknown, "Неизвестное заклинание")
	message.SetString(ru, codeSpellTarget, "Неверная цель заклинания")
	message.SetString(ru, codeSpellNoEffect, "Заклинание не сработало")
	message.SetString(ru, codeSpellCast, "Заклинание: %s")
	message.SetString(ru, codeMerchantCame, "Пришёл странствующий торговец")
	message.SetString(ru, codeMerchantBought, "Куплено за %d монет")
	message.SetString(ru, codeMerchantCoins, "Недостаточно монет")
	message.SetString(ru, codeMerchantOffer, "Такого товара нет")
	message.SetString(ru, codeMerchantLeft, "Торговец ушёл")
	message.SetString(ru, codeGodMode, "Режим бога: %v")
	message.SetString(ru, codeAmbush, "ЗАСАДА: -%d HP")
	message.SetString(ru, codeScavenger, "ПАДАЛЬЩИК: +%d HP")
	message.SetString(ru, codeCommission, "КОМИССИЯ: -%d монет")
	message.SetString(ru, codeBreach, "ПРОЛОМ: щит потерян")
	message.SetString(ru, codeDisarm, "РАЗОРУЖЕНИЕ: оружие потеряно")
	message.SetString(ru, codeBlessing, "БЛАГОСЛОВЕНИЕ: +%d HP")
	message.SetString(ru, codeGraveyard, "КЛАДБИЩЕ: монстр восстал (%d HP)")
	message.SetString(ru, codeLegacy, "НАСЛЕДИЕ: монстры +1 HP")
	message.SetString(ru, codeTheft, "КРАЖА: предмет украден")
	message.SetString(ru, codeBones, "КОСТИ: мёртвая монета в колоде")
	message.SetString(ru, codeJunk, "ХЛАМ: мёртвая монета")
	message.SetString(ru, codeCorrosion, "КОРРОЗИЯ: предмет ослаб")
	message.SetString(ru, codeMiss, "ПРОМАХ: следующий удар слабее")
	message.SetString(ru, codeParasite, "ПАРАЗИТ: +1 HP")
	message.SetString(ru, codeCorpseeater, "ТРУПОЕД: +%d HP")
	message.SetString(ru, codeEscape, "БЕГСТВО: монстр сбежал в колоду")

	en := language.English
	message.SetString(en, codeGameStarted, "New run: %d cards in the deck")
	message.SetString(en, codeGameWon, "VICTORY: the dungeon is cleared")
	message.SetString(en, codeGameLost, "DEFEAT: the hero has fallen")
	message.SetString(en, codeUnknownAction, "Unknown action")
	message.SetString(en, codeMerchantBusy, "The merchant is waiting: buy or leave")
	message.SetString(en, codeCardNotFound, "Card not found")
	message.SetString(en, codeSlotOccupied, "Slot is occupied")
	message.SetString(en, codeSlotEmpty, "Slot is empty")
	message.SetString(en, codeSlotBlocked, "WEB: backpack is blocked")
	message.SetString(en, codeTakeForbidden, "This card cannot be taken")
	message.SetString(en, codeTakeDone, "%s: moved to %s")
	message.SetString(en, codeMoveForbidden, "This item cannot be moved")
	message.SetString(en, codeMoveDone, "Item moved")
	message.SetString(en, codeStealthBlocked, "HIDDEN")
	message.SetString(en, codeSilenceBlocked, "SILENCE: magic is blocked")
	message.SetString(en, codeNoWeapon, "No weapon in hand")
	message.SetString(en, codeNoShield, "No shield in hand")
	message.SetString(en, codeBadSource, "Cannot attack that way")
	message.SetString(en, codeMonsterKilled, "Monster slain: %d damage")
	message.SetString(en, codeMonsterHit, "Monster wounded: %d HP left")
	message.SetString(en, codeBareHanded, "Bare-handed fight: -%d HP")
	message.SetString(en, codeShieldBlock, "Shield took the blow: -%d HP")
	message.SetString(en, codeStompShield, "STOMP: shield shattered")
	message.SetString(en, codePotionHeal, "Healed: +%d HP")
	message.SetString(en, codeNotPotion, "Not a potion")
	message.SetString(en, codeCoinCollected, "+%d coins")
	message.SetString(en, codeNotCoin, "Not a coin")
	message.SetString(en, codeSellScream, "SCREAM: trading is blocked")
	message.SetString(en, codeSellEquipped, "Equipped items cannot be sold")
	message.SetString(en, codeSellSkull, "Skulls cannot be sold from the backpack")
	message.SetString(en, codeSellForbidden, "This card cannot be sold")
	message.SetString(en, codeSellDone, "Sold: +%d coins")
	message.SetString(en, codeResetDenied, "The table cannot be reset")
	message.SetString(en, codeResetDone, "Table reset: -%d HP")
	message.SetString(en, codeCurseLocked, "A curse can no longer be chosen")
	message.SetString(en, codeCurseUnknown, "Unknown curse")
	message.SetString(en, codeCurseActivated, "Curse: %s")
	message.SetString(en, codeSpellUnknown, "Unknown spell")
	message.SetString(en, codeSpellTarget, "Wrong spell target")
	message.SetString(en, codeSpellNoEffect, "The spell fizzled")
	message.SetString(en, codeSpellCast, "Spell: %s")
	message.SetString(en, codeMerchantCame, "A traveling merchant arrived")
	message.SetString(en, codeMerchantBought, "Bought for %d coins")
	message.SetString(en, codeMerchantCoins, "Not enough coins")
	message.SetString(en, codeMerchantOffer, "No such offer")
	message.SetString(en, codeMerchantLeft, "The merchant left")
	message.SetString(en, codeGodMode, "God mode: %v")
	message.SetString(en, codeAmbush, "AMBUSH: -%d HP")
	message.SetString(en, codeScavenger, "SCAVENGER: +%d HP")
	message.SetString(en, codeCommission, "COMMISSION: -%d coins")
	message.SetString(en, codeBreach, "BREACH: shield lost")
	message.SetString(en, codeDisarm, "DISARM: weapon lost")
	message.SetString(en, codeBlessing, "BLESSING: +%d HP")
	message.SetString(en, codeGraveyard, "GRAVEYARD: a monster rose (%d HP)")
	message.SetString(en, codeLegacy, "LEGACY: monsters +1 HP")
	message.SetString(en, codeTheft, "THEFT: an item was stolen")
	message.SetString(en, codeBones, "BONES: a dead coin joins the deck")
	message.SetString(en, codeJunk, "JUNK: a dead coin")
	message.SetString(en, codeCorrosion, "CORROSION: an item weakened")
	message.SetString(en, codeMiss, "MISS: the next swing is weaker")
	message.SetString(en, codeParasite, "PARASITE: +1 HP")
	message.SetString(en, codeCorpseeater, "CORPSEEATER: +%d HP")
	message.SetString(en, codeEscape, "ESCAPE: the monster fled into the deck")
}
