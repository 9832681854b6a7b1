package dialogue

import "fmt"

const (
	msgWelcome          = "Welcome! Say 1 to order, 2 to get Menu, 3 to make reservation, 4 for client issues."
	msgNotUnderstood    = "Didn't understand. Try again."
	msgMainMenuError    = "Sorry, there was an error. Press Start again."
	msgOrderName        = "Please tell me your name for the order."
	msgOrderPhone       = "Please tell me your phone number."
	msgOrderItem        = "What would you like to order?"
	msgOrderMoreItem    = "What else would you like to order?"
	msgOrderMissingInfo = "I'm missing some information. Let's start over."
	msgOrderFailed      = "Failed to place order. Please try again."
	msgOrderAborted     = "Order process aborted."
	msgOrderContinue    = "Anything else I can help you with? Say yes or no."
	msgOrderGoodbye     = "Thank you for your order! Have a great day!"
	msgOrderCompleted   = "Order process completed."

	msgMenuAsk       = "Sure! What would you like to know about our menu? You can ask about categories, specific dishes, prices, or dietary options."
	msgMenuFailed    = "Sorry, I couldn't process your menu question. Please try again."
	msgMenuAborted   = "Menu inquiry aborted."
	msgMenuContinue  = "Would you like to know anything else about our menu? Say yes or no."
	msgMenuGoodbye   = "Great! Let me know if you need anything else."
	msgMenuCompleted = "Menu inquiry completed."

	msgReservationName      = "Please tell me your name."
	msgReservationTime      = "At what time would you like the reservation?"
	msgReservationFailed    = "Failed to create reservation. Please try again."
	msgReservationAborted   = "Reservation process aborted."
	msgReservationGoodbye   = "Thank you for your reservation! Have a great day!"
	msgReservationCompleted = "Reservation process completed."

	msgIssueAsk              = "Please tell me your issue or request."
	msgIssueAborted          = "Issue process aborted."
	msgOrderIssueNumber      = "I can help you with your order issue. Please provide your order number."
	msgOrderIssueBadNumber   = "I couldn't find a valid order number. Please try again with your order number."
	msgOrderIssueVerify      = "Please provide your name for verification."
	msgOrderIssueUpdate      = "What would you like to update? Please describe the changes."
	msgOrderIssueMismatch    = "The order number doesn't match your name. Please verify your information."
	msgOrderIssueNotModified = "This order cannot be modified."
	msgOrderIssueFailed      = "Sorry, there was an error processing your request. Please try again later."
	msgUpdateAborted         = "Update process aborted."
	msgReservationCancelAsk  = "I can help you cancel your reservation. Please provide your reservation number or name."
	msgReservationCancelAck  = "Your reservation cancellation request has been received. Our team will process it shortly."
	msgCheckingIssue         = "Let me check that for you."
	msgIssueFailed           = "Sorry, could not resolve the issue at this time. Please try again later."
	msgIssueRetry            = "Would you like to try explaining your issue again? Say yes or no."
	msgIssueGoodbye          = "I apologize for the inconvenience. Please feel free to contact us again if you need further assistance."

	msgContinue      = "Is there anything else I can help you with? Say yes or no."
	msgGoodbye       = "Thank you for contacting us. Have a great day!"
	msgContinueError = "Sorry, I didn't understand. Please press Start again if you need further assistance."
)

func msgItemAdded(item string) string {
	return fmt.Sprintf("Added %s. Do you want to add another item? Say yes or no.", item)
}

func msgOrderSummary(items, orderID string) string {
	return fmt.Sprintf("Your order is: %s. Order number: #%s.", items, orderID)
}

func msgReservationSize(name string) string {
	return fmt.Sprintf("Hello %s. How many people for the reservation?", name)
}

func msgReservationSummary(name string, people int, timeSlot, reservationID string) string {
	return fmt.Sprintf("Reservation confirmed for %s, %d people at %s. Reservation number: #%s.", name, people, timeSlot, reservationID)
}

func msgOrderCancelled(orderNumber string) string {
	return fmt.Sprintf("Order number %s has been successfully cancelled.", orderNumber)
}

func msgOrderNotFound(orderNumber string) string {
	return fmt.Sprintf("Order number %s not found. Please check your order number.", orderNumber)
}

func msgUpdateNoted(orderNumber string) string {
	return fmt.Sprintf("Update request for order number %s has been noted. Our team will contact you shortly.", orderNumber)
}
