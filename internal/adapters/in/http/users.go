package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.h.ListUsers.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(users, toUser))
}

func (s *Server) CreateUser(ctx echo.Context) error {
	var payload UserPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(payload.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddUserCommand(payload.Username, payload.Email, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.AddUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toUser(u))
}

func (s *Server) GetUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.GetUser.Handle(ctx.Request().Context(), queries.NewGetQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var payload UserPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(payload.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateUserCommand(id, payload.Username, payload.Email, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}

func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	u, err := s.h.DeleteUser.Handle(ctx.Request().Context(), commands.NewDeleteCommand(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(u))
}
