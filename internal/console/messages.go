package console

import (
	"fmt"

	"github.com/ArowuTest/committee-manager/internal/models"
)

const (
	welcomeBanner  = "*****Welcome to Committee Management System*****"
	goodbyeBanner  = "*****Thanks for using Committee Management System*****"
	menuRule       = "======================================"
	choicePrompt   = "Enter your choice: "
	invalidChoice  = "Invalid choice. Please try again."
	invalidNumber  = "Invalid number. Please try again."
	committeeFull  = "Committee is full! Cannot add more members."
	memberNotFound = "Member not found!"
	noPaidMembers  = "No paid members. Lucky draw cannot be conducted."
)

var menuItems = []string{
	"1. Add Member",
	"2. Collect Payment",
	"3. Show Member Status",
	"4. Conduct Lucky Draw",
	"5. Exit",
}

func memberAdded(name string) string {
	return fmt.Sprintf("%s added to the committee.", name)
}

func paymentCollected(amount int, name string) string {
	return fmt.Sprintf("Payment of %d collected from %s.", amount, name)
}

func paymentRejected(unitPrice int) string {
	return fmt.Sprintf("Payment must be exactly %d. Payment not collected.", unitPrice)
}

func statusHeader(committee string) string {
	return fmt.Sprintf("Member Status in %s:", committee)
}

// memberLine renders one row of the status listing
func memberLine(m models.Member) string {
	return fmt.Sprintf("Member ID: %d, Name: %s, Status: %s", m.ID, m.Name, m.StatusLabel())
}

func drawWinner(name string) string {
	return fmt.Sprintf("Lucky Draw Winner: %s!", name)
}
