package parser

// Football (NFL) normalizers. Each extracts an explicit field subset from
// the raw Sportradar payload; everything else is dropped on purpose.

// normalizeFootballSchedule reduces a season schedule payload to
// Schedule -> Season -> Weeks -> Games. Weeks without games are dropped.
func normalizeFootballSchedule(payload map[string]any) (*Schedule, error) {
	season, err := objField(payload, "season", "season object")
	if err != nil {
		return nil, err
	}
	id, err := strField(season, "id", "season id")
	if err != nil {
		return nil, err
	}

	out := Season{
		ID:    id,
		Year:  int(optFloat(season, "year")),
		Weeks: []Week{},
	}

	rawWeeks, _ := payload["weeks"].([]any)
	for _, rw := range rawWeeks {
		week, ok := rw.(map[string]any)
		if !ok {
			continue
		}
		rawGames, _ := week["games"].([]any)
		if len(rawGames) == 0 {
			continue
		}

		games := make([]Game, 0, len(rawGames))
		for _, rg := range rawGames {
			game, ok := rg.(map[string]any)
			if !ok {
				continue
			}
			venue := optObj(game, "venue")
			location := optObj(venue, "location")
			scoring := optObj(game, "scoring")

			games = append(games, Game{
				ID:   optStr(game, "id"),
				Date: optStr(game, "scheduled"),
				Location: Coordinates{
					Lat: optFloat(location, "lat"),
					Lng: optFloat(location, "lng"),
				},
				Stadium:   optStr(venue, "name"),
				HomeTeam:  optStr(optObj(game, "home"), "name"),
				AwayTeam:  optStr(optObj(game, "away"), "name"),
				ScoreHome: optInt(scoring, "home_points"),
				ScoreAway: optInt(scoring, "away_points"),
			})
		}

		out.Weeks = append(out.Weeks, Week{
			ID:     optStr(week, "id"),
			Number: int(optFloat(week, "sequence")),
			Games:  games,
		})
	}

	return &Schedule{Season: out}, nil
}

// normalizeFootballTransactions reduces a daily transaction payload to a
// TransactionLog keyed by the already-derived composite id. A payload with
// no player transactions yields the NoTransactions sentinel string.
func normalizeFootballTransactions(key string, payload map[string]any) (any, error) {
	league, err := objField(payload, "league", "league object")
	if err != nil {
		return nil, err
	}

	rawPlayers, _ := payload["players"].([]any)
	if len(rawPlayers) == 0 {
		return NoTransactions, nil
	}

	log := &TransactionLog{
		ID:         key,
		LeagueName: optStr(league, "name"),
		StartTime:  optStr(payload, "start_time"),
		EndTime:    optStr(payload, "end_time"),
		Players:    make([]PlayerTransactions, 0, len(rawPlayers)),
	}

	for _, rp := range rawPlayers {
		plr, ok := rp.(map[string]any)
		if !ok {
			continue
		}
		rawTxns, _ := plr["transactions"].([]any)
		txns := make([]Transaction, 0, len(rawTxns))
		for _, rt := range rawTxns {
			txn, ok := rt.(map[string]any)
			if !ok {
				continue
			}
			toTeam := optObj(txn, "to_team")
			txns = append(txns, Transaction{
				Description:   optStr(txn, "desc"),
				EffectiveDate: optStr(txn, "effective_date"),
				StatusBefore:  optStr(txn, "status_before"),
				ReceivingTeam: optStr(toTeam, "market") + " " + optStr(toTeam, "name"),
			})
		}
		log.Players = append(log.Players, PlayerTransactions{
			Name:         optStr(plr, "name"),
			Position:     optStr(plr, "position"),
			Transactions: txns,
		})
	}

	return log, nil
}
