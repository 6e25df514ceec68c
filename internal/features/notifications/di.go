package notifications

var logNotifier = &LogNotifier{}

func GetMembershipNotifier() MembershipNotifier {
	return logNotifier
}
