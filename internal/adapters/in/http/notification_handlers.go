package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications?unreadOnly=&limit=&offset=.
func (s *Server) ListNotifications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	unreadOnly, err := queryBool(c, "unreadOnly")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", queries.DefaultNotificationPageSize)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	query, err := queries.NewListNotificationsQuery(actor, unreadOnly, limit, offset)
	if err != nil {
		return err
	}
	page, err := s.h.ListNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, page, "")
}

// UnreadCount handles GET /api/v1/notifications/unread-count.
func (s *Server) UnreadCount(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetUnreadCountQuery(actor)
	if err != nil {
		return err
	}
	count, err := s.h.GetUnreadCount.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, map[string]int64{"count": count}, "")
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actor, notificationID)
	if err != nil {
		return err
	}
	n, err := s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newNotificationView(n), "notification marked as read")
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkAllNotificationsReadCommand(actor)
	if err != nil {
		return err
	}
	updated, err := s.h.MarkAllNotificationsRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, map[string]int64{"updated": updated}, "notifications marked as read")
}
