package commands

//go:generate mockgen -source=session.go -destination=mocks/mocks.go -package=mocks Saver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contactbook/internal/commands/mocks"
	"contactbook/internal/contacts/models"
	"contactbook/pkg/requestcontext"
)

// =============================================================================
// Session Test Suite
// =============================================================================
// The session owns the loop, the exit commands and the final save. The saver is
// mocked so each test states exactly when the book is persisted.

type SessionSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	saver   *mocks.MockSaver
	handler *Handler
	session *Session
	out     *bytes.Buffer
	ids     int
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.saver = mocks.NewMockSaver(s.ctrl)
	s.handler = NewHandler(nil)
	s.ids = 0
	s.session = NewSession(s.handler, s.saver, WithIDGenerator(func() string {
		s.ids++
		return "id-" + strings.Repeat("x", s.ids)
	}))
	s.out = &bytes.Buffer{}
}

func (s *SessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionSuite) run(input string) error {
	return s.session.Run(context.Background(), strings.NewReader(input), s.out)
}

func (s *SessionSuite) TestConversation() {
	s.saver.EXPECT().Save(gomock.Any(), s.handler.Book()).Return(nil)

	err := s.run("hello\nadd Alice 0501234567\n\nphone Alice\nexit\nhello\n")
	s.Require().NoError(err)

	expected := MsgWelcome + "\n" +
		Prompt + "How can I help you?\n" +
		Prompt + "Contact added.\n" +
		Prompt + MsgBlank + "\n" +
		Prompt + "Contact Alice's phones: 0501234567\n" +
		Prompt + MsgGoodbye + "\n"
	s.Equal(expected, s.out.String())
}

func (s *SessionSuite) TestCloseSavesBook() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, book *models.AddressBook) error {
			s.Equal(1, book.Len())
			_, ok := book.Find("Bob")
			s.True(ok)
			return nil
		})

	s.Require().NoError(s.run("add Bob 0671112233\nclose\n"))
	s.True(strings.HasSuffix(s.out.String(), MsgGoodbye+"\n"))
}

func (s *SessionSuite) TestEndOfInputSaves() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.run("add Bob 0671112233"))
	s.NotContains(s.out.String(), MsgGoodbye)
	s.True(strings.HasSuffix(s.out.String(), Prompt))
}

func (s *SessionSuite) TestSaveFailureIsReported() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := s.run("exit\n")
	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
	s.Contains(s.out.String(), "Unexpected error: failed to save address book: disk full")
}

func (s *SessionSuite) TestReadFailureStillSaves() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	err := s.session.Run(context.Background(), iotest.ErrReader(errors.New("tty gone")), s.out)
	s.Require().Error(err)
	s.Contains(err.Error(), "read input")
}

func (s *SessionSuite) TestOverlongLineIsAnsweredAndSkipped() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, book *models.AddressBook) error {
			s.Equal(1, book.Len())
			_, ok := book.Find("Alice")
			s.True(ok)
			return nil
		})

	long := "add Bob " + strings.Repeat("7", 70*1024)
	s.Require().NoError(s.run(long + "\nhello\nadd Alice 0501234567\nexit\n"))

	expected := MsgWelcome + "\n" +
		Prompt + MsgTooLong + "\n" +
		Prompt + "How can I help you?\n" +
		Prompt + "Contact added.\n" +
		Prompt + MsgGoodbye + "\n"
	s.Equal(expected, s.out.String())
}

func (s *SessionSuite) TestLineAtLimitIsExecuted() {
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	line := "hello " + strings.Repeat("x", maxLineBytes-len("hello "))
	s.Require().NoError(s.run(line + "\r\nclose\n"))
	s.Contains(s.out.String(), Prompt+"How can I help you?\n")
	s.NotContains(s.out.String(), MsgTooLong)
}

func (s *SessionSuite) TestEachCommandGetsAnID() {
	var seen []string
	s.handler.routes["whoami"] = func(ctx context.Context, _ []string) (string, error) {
		id := requestcontext.CommandID(ctx)
		seen = append(seen, id)
		return id, nil
	}
	s.saver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.run("whoami\nwhoami\n"))
	s.Equal([]string{"id-x", "id-xx"}, seen)
}
