package table

import (
	"strconv"
	"strings"

	"umbrella-fleet-backend/internal/domain"
)

func lower(s string) string {
	return strings.ToLower(s)
}

func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func idContains(id int32, needle string) bool {
	return strings.Contains(strconv.Itoa(int(id)), needle)
}

// The per-entity match functions mirror the dashboard tables: each searches
// the same small fixed field subset its table did.

func MatchStation(s domain.Station, term string) bool {
	return containsFold(s.StationName, term) || idContains(s.StationID, term)
}

func MatchUmbrella(u domain.Umbrella, term string) bool {
	if containsFold(u.Color, term) || idContains(u.UmbrellaID, term) {
		return true
	}
	return u.CurrentStationName != nil && containsFold(*u.CurrentStationName, term)
}

func MatchAccount(a domain.Account, term string) bool {
	if containsFold(a.FirstName, term) || containsFold(a.LastName, term) || idContains(a.AccountID, term) {
		return true
	}
	return a.CardID != nil && idContains(*a.CardID, term)
}

func MatchPaymentMethod(p domain.PaymentMethod, term string) bool {
	return idContains(p.CardID, term) || containsFold(p.CardName, term) || strings.Contains(p.CardNumber, term)
}

func MatchMaintainer(m domain.Maintainer, term string) bool {
	return containsFold(m.FirstName, term) || containsFold(m.LastName, term) || idContains(m.MaintainerID, term)
}

func MatchMaintenanceHistory(h domain.MaintenanceHistoryView, term string) bool {
	return idContains(h.MaintenanceHistoryID, term) ||
		containsFold(h.MaintainerName, term) ||
		containsFold(h.StationName, term) ||
		containsFold(h.Report, term)
}

func MatchRentalHistory(r domain.RentalHistoryView, term string) bool {
	if containsFold(r.FirstName, term) || containsFold(r.LastName, term) ||
		containsFold(r.StartStationName, term) || idContains(r.UmbrellaID, term) {
		return true
	}
	return r.DestinationStationName != nil && containsFold(*r.DestinationStationName, term)
}
