package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Service benefits.Service
	DB      Pinger
	Version string
	Now     func() time.Time
}

type addUserCardRequest struct {
	CardID       string  `json:"card_id"`
	CardOpenDate string  `json:"card_open_date"`
	Nickname     *string `json:"nickname"`
}

type updateUserCardRequest struct {
	CardOpenDate *string `json:"card_open_date"`
	Nickname     *string `json:"nickname"`
}

type redeemRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	health := &HealthCheck{Status: "healthy", Version: h.Version, Components: map[string]ComponentHealth{}}
	if h.DB != nil {
		if err := h.DB.Ping(c.UserContext()); err != nil {
			health.AddComponent("database", "unhealthy", err.Error())
		} else {
			health.AddComponent("database", "healthy", "")
		}
	}

	if health.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(NewSuccessResponse(health, "degraded"))
	}
	return SendSuccess(c, health, "")
}

func (h *Handlers) ListCatalog(c *fiber.Ctx) error {
	cards, err := h.Service.ListCatalog(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	if cards == nil {
		cards = []*benefits.Card{}
	}
	return SendSuccess(c, cards, "")
}

func (h *Handlers) GetCatalogCard(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	card, err := h.Service.GetCatalogCard(c.UserContext(), id)
	if err != nil {
		return err
	}
	return SendSuccess(c, card, "")
}

func (h *Handlers) ListUserCards(c *fiber.Ctx) error {
	cards, err := h.Service.ListUserCards(c.UserContext(), currentUser(c))
	if err != nil {
		return err
	}
	if cards == nil {
		cards = []*benefits.UserCardWithBenefits{}
	}
	return SendSuccess(c, cards, "")
}

func (h *Handlers) AddUserCard(c *fiber.Ctx) error {
	var req addUserCardRequest
	if err := c.BodyParser(&req); err != nil {
		return &benefits.ValidationError{Reason: "malformed request body"}
	}

	cardID, err := uuid.Parse(strings.TrimSpace(req.CardID))
	if err != nil {
		return &benefits.ValidationError{Field: "card_id", Reason: "must be a UUID"}
	}
	var open time.Time
	if req.CardOpenDate != "" {
		if open, err = parseDate("card_open_date", req.CardOpenDate); err != nil {
			return err
		}
	}

	uc, err := h.Service.AddUserCard(c.UserContext(), currentUser(c), benefits.NewUserCard{
		CardID:       cardID,
		CardOpenDate: open,
		Nickname:     req.Nickname,
	})
	if err != nil {
		return err
	}
	return SendCreated(c, uc, "card added")
}

func (h *Handlers) UpdateUserCard(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req updateUserCardRequest
	if err := c.BodyParser(&req); err != nil {
		return &benefits.ValidationError{Reason: "malformed request body"}
	}

	update := benefits.UserCardUpdate{Nickname: req.Nickname}
	if req.CardOpenDate != nil {
		open, err := parseDate("card_open_date", *req.CardOpenDate)
		if err != nil {
			return err
		}
		update.CardOpenDate = &open
	}

	uc, err := h.Service.UpdateUserCard(c.UserContext(), currentUser(c), id, update)
	if err != nil {
		return err
	}
	return SendSuccess(c, uc, "card updated")
}

func (h *Handlers) RemoveUserCard(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.RemoveUserCard(c.UserContext(), currentUser(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) ListBenefits(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	list, err := h.Service.ListBenefits(c.UserContext(), currentUser(c), id, listOptions(c))
	if err != nil {
		return err
	}
	return SendSuccess(c, nonNil(list), "")
}

func (h *Handlers) ListAvailable(c *fiber.Ctx) error {
	list, err := h.Service.ListAvailable(c.UserContext(), currentUser(c), listOptions(c))
	if err != nil {
		return err
	}
	return SendSuccess(c, nonNil(list), "")
}

func (h *Handlers) Redeem(c *fiber.Ctx) error {
	cardID, benefitID, err := benefitParams(c)
	if err != nil {
		return err
	}
	var req redeemRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return &benefits.ValidationError{Field: "amount", Reason: "must be a decimal number"}
		}
	}

	r, err := h.Service.Redeem(c.UserContext(), currentUser(c), cardID, benefitID, req.Amount)
	if err != nil {
		return err
	}
	return SendSuccess(c, r, "benefit redeemed")
}

func (h *Handlers) Unredeem(c *fiber.Ctx) error {
	cardID, benefitID, err := benefitParams(c)
	if err != nil {
		return err
	}
	if err := h.Service.Unredeem(c.UserContext(), currentUser(c), cardID, benefitID); err != nil {
		return err
	}
	return SendSuccess(c, nil, "redemption removed")
}

func (h *Handlers) History(c *fiber.Ctx) error {
	cardID, benefitID, err := benefitParams(c)
	if err != nil {
		return err
	}
	rows, err := h.Service.History(c.UserContext(), currentUser(c), cardID, benefitID)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []*benefits.Redemption{}
	}
	return SendSuccess(c, rows, "")
}

func (h *Handlers) GetPreference(c *fiber.Ctx) error {
	cardID, benefitID, err := benefitParams(c)
	if err != nil {
		return err
	}
	pref, err := h.Service.GetPreference(c.UserContext(), currentUser(c), cardID, benefitID)
	if err != nil {
		return err
	}
	return SendSuccess(c, pref, "")
}

func (h *Handlers) UpdatePreference(c *fiber.Ctx) error {
	cardID, benefitID, err := benefitParams(c)
	if err != nil {
		return err
	}
	var update benefits.PreferenceUpdate
	if err := c.BodyParser(&update); err != nil {
		return &benefits.ValidationError{Reason: "malformed request body"}
	}

	pref, err := h.Service.UpdatePreference(c.UserContext(), currentUser(c), cardID, benefitID, update)
	if err != nil {
		return err
	}
	return SendSuccess(c, pref, "preferences updated")
}

func (h *Handlers) CardSummary(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	year, err := h.yearQuery(c)
	if err != nil {
		return err
	}
	s, err := h.Service.CardSummary(c.UserContext(), currentUser(c), id, year)
	if err != nil {
		return err
	}
	return SendSuccess(c, s, "")
}

func (h *Handlers) AnnualSummary(c *fiber.Ctx) error {
	year, err := h.yearQuery(c)
	if err != nil {
		return err
	}
	s, err := h.Service.AnnualSummary(c.UserContext(), currentUser(c), year)
	if err != nil {
		return err
	}
	return SendSuccess(c, s, "")
}

func (h *Handlers) yearQuery(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" {
		now := time.Now
		if h.Now != nil {
			now = h.Now
		}
		return now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &benefits.ValidationError{Field: "year", Reason: "must be an integer"}
	}
	return year, nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, &benefits.ValidationError{Field: name, Reason: "must be a UUID"}
	}
	return id, nil
}

func benefitParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	cardID, err := uuidParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	benefitID, err := uuidParam(c, "benefit_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return cardID, benefitID, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &benefits.ValidationError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return t, nil
}

func listOptions(c *fiber.Ctx) benefits.ListOptions {
	return benefits.ListOptions{IncludeHidden: c.QueryBool("show_hidden", false)}
}

func nonNil(list []*benefits.Availability) []*benefits.Availability {
	if list == nil {
		return []*benefits.Availability{}
	}
	return list
}
