// Package console drives the committee from an interactive text menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ArowuTest/committee-manager/internal/services"
)

const (
	choiceAddMember = iota + 1
	choiceCollectPayment
	choiceShowStatus
	choiceLuckyDraw
	choiceExit
)

// maxTokenSize bounds a single input token such as a member name
const maxTokenSize = 16 << 20

// Menu reads whitespace-separated tokens from in and prints status lines to out
type Menu struct {
	committee services.CommitteeService
	in        *bufio.Scanner
	out       io.Writer
}

// NewMenu creates a Menu bound to the given committee
func NewMenu(committee services.CommitteeService, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	return &Menu{
		committee: committee,
		in:        scanner,
		out:       out,
	}
}

// Run loops until the user picks Exit or input ends
func (m *Menu) Run() error {
	m.println(welcomeBanner)

	for {
		m.showMenu()

		token, ok := m.next()
		if !ok {
			return m.in.Err()
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			m.println(invalidChoice)
			continue
		}

		switch choice {
		case choiceAddMember:
			if !m.addMember() {
				return m.in.Err()
			}
		case choiceCollectPayment:
			if !m.collectPayment() {
				return m.in.Err()
			}
		case choiceShowStatus:
			m.showStatus()
		case choiceLuckyDraw:
			m.luckyDraw()
		case choiceExit:
			m.println(goodbyeBanner)
			return nil
		default:
			m.println(invalidChoice)
		}
	}
}

func (m *Menu) showMenu() {
	m.println("")
	m.println(menuRule)
	for _, item := range menuItems {
		m.println(item)
	}
	m.println(menuRule)
	m.print(choicePrompt)
}

// addMember returns false when input ran out
func (m *Menu) addMember() bool {
	m.print("Enter Member ID: ")
	id, ok, valid := m.nextInt()
	if !ok {
		return false
	}
	m.print("Enter Member Name: ")
	name, ok := m.next()
	if !ok {
		return false
	}
	if !valid {
		m.println(invalidNumber)
		return true
	}

	member, err := m.committee.AddMember(id, name)
	switch {
	case errors.Is(err, services.ErrCapacityExceeded):
		m.println(committeeFull)
	case err != nil:
		m.println(err.Error())
	default:
		m.println(memberAdded(member.Name))
	}
	return true
}

// collectPayment returns false when input ran out
func (m *Menu) collectPayment() bool {
	m.print("Enter Member ID to collect payment: ")
	id, ok, idValid := m.nextInt()
	if !ok {
		return false
	}
	m.print(fmt.Sprintf("Enter payment amount (must be %d): ", m.committee.UnitPrice()))
	amount, ok, amountValid := m.nextInt()
	if !ok {
		return false
	}
	if !idValid || !amountValid {
		m.println(invalidNumber)
		return true
	}

	member, err := m.committee.CollectPayment(id, amount)
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		m.println(paymentRejected(m.committee.UnitPrice()))
	case errors.Is(err, services.ErrMemberNotFound):
		m.println(memberNotFound)
	case err != nil:
		m.println(err.Error())
	default:
		m.println(paymentCollected(amount, member.Name))
	}
	return true
}

func (m *Menu) showStatus() {
	m.println(statusHeader(m.committee.Name()))
	for _, member := range m.committee.MemberStatus() {
		m.println(memberLine(member))
	}
}

func (m *Menu) luckyDraw() {
	result, err := m.committee.ConductLuckyDraw()
	switch {
	case errors.Is(err, services.ErrNoEligibleMembers):
		m.println(noPaidMembers)
	case err != nil:
		m.println(err.Error())
	default:
		m.println(drawWinner(result.Winner.Name))
	}
}

func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// nextInt reports whether a token was read and whether it parsed
func (m *Menu) nextInt() (int, bool, bool) {
	token, ok := m.next()
	if !ok {
		return 0, false, false
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, true, false
	}
	return n, true, true
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
