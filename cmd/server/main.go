package main

import (
	"log"
	"net/http"

	"skazmor/internal/config"
	"skazmor/internal/game"
	"skazmor/internal/history"
	"skazmor/internal/session"
	"skazmor/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	content, err := game.LoadContent(cfg.ContentPath)
	if err != nil {
		log.Fatal(err)
	}
	deck, err := game.LoadDeckConfig(cfg.DeckPath)
	if err != nil {
		log.Fatal(err)
	}

	runs, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer runs.Close()

	lang := game.ParseLanguage(cfg.Lang)
	srv := &web.Server{
		Sessions: session.NewMemoryStore[*session.GameSession](),
		Factory: session.Factory{
			Content:        content,
			Deck:           deck,
			Lang:           lang,
			Seed:           cfg.Seed,
			GodModeAllowed: cfg.GodModeAllowed,
			Recorder:       runs,
		},
		History: runs,
		Lang:    lang,
	}

	log.Printf("deck %q loaded, log language %s", deck.Name, lang)
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
