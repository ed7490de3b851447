package handlers

import (
	"net/http"
	"strconv"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/go-playground/validator/v10"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/service"
)

type Handler struct {
	userService    service.UserService
	walletService  service.WalletService
	requestService service.RequestService
	secretKey      string
	validate       *validator.Validate
}

func NewHandler(userService service.UserService, walletService service.WalletService, requestService service.RequestService, secretKey string) *Handler {
	return &Handler{
		userService:    userService,
		walletService:  walletService,
		requestService: requestService,
		secretKey:      secretKey,
		validate:       validator.New(),
	}
}

func pageFromQuery(r *http.Request) models.Page {
	page := models.Page{}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.Number = n
		}
	}
	return page
}
