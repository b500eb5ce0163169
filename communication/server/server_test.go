package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"tictacpro/catalog"
	"tictacpro/communication"
	"tictacpro/communication/client"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/geometry"

	"github.com/stretchr/testify/require"
)

func websocketURL(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	u.Scheme = "ws"
	u.Path = "/ws"
	return u.String()
}

func dial(t *testing.T, delay time.Duration) *client.Client {
	t.Helper()
	b, err := geometry.New(3, 3)
	require.NoError(t, err)
	e, err := game.NewEngine(b, catalog.Default())
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(NewServer(e, gamemaster.Config{MaxLevels: 2, OpponentDelay: delay}, 1).Handle))
	t.Cleanup(srv.Close)

	c, err := client.Dial(websocketURL(t, srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSession(t *testing.T) {
	c := dial(t, 200*time.Millisecond)

	resp, err := c.Do(communication.Request{Type: communication.State})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	require.Equal(t, gamemaster.Menu, resp.Snapshot.Phase)

	resp, err = c.Do(communication.Request{Type: communication.Move, Cell: 0})
	require.NoError(t, err)
	require.Contains(t, resp.Error, gamemaster.ErrWrongPhase.Error())

	resp, err = c.Do(communication.Request{Type: communication.Start})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	require.Equal(t, gamemaster.Playing, resp.Snapshot.Phase)
	require.Equal(t, 1, resp.Snapshot.Level)
	require.NotNil(t, resp.Snapshot.Round)
	require.Len(t, resp.Snapshot.Round.Board, 9)
	require.GreaterOrEqual(t, len(resp.Legal), 2)
	legal := resp.Legal

	resp, err = c.Do(communication.Request{Type: communication.Move, Cell: legal[0]})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	require.Equal(t, game.Player, resp.Outcomes[0].Mover)
	require.True(t, resp.Snapshot.AwaitingOpponent)
	require.Empty(t, resp.Legal)

	resp, err = c.Do(communication.Request{Type: communication.Move, Cell: legal[1]})
	require.NoError(t, err)
	require.Contains(t, resp.Error, gamemaster.ErrAwaitingOpponent.Error())

	resp, err = c.Receive()
	require.NoError(t, err)
	require.True(t, resp.Opponent, "the opponent reply is pushed")
	require.Empty(t, resp.Error)
	require.Equal(t, game.Opponent, resp.Outcomes[0].Mover)
	require.NotNil(t, resp.Lines)
}

func TestProtocolErrors(t *testing.T) {
	c := dial(t, 50*time.Millisecond)

	resp, err := c.Do(communication.Request{Type: "teleport"})
	require.NoError(t, err)
	require.Contains(t, resp.Error, "unknown request type")

	resp, err = c.Do(communication.Request{Type: communication.Next})
	require.NoError(t, err)
	require.Contains(t, resp.Error, gamemaster.ErrWrongPhase.Error())

	_, err = c.Do(communication.Request{Type: communication.Start})
	require.NoError(t, err)

	resp, err = c.Do(communication.Request{Type: communication.Ability, Ability: game.Ability("teleport")})
	require.NoError(t, err)
	require.Contains(t, resp.Error, game.ErrAbilityUnavailable.Error())
}
