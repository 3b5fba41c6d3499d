package dialog

// Reply texts, Hindi/English mixed the way drivers actually speak.
const (
	replySahayata = "Aapki suraksha sabse zaroori hai. Hum abhi madad bhej rahe hain — " +
		"emergency helpline se judne ke liye neeche button dabayein."

	replyAskName       = "Chaliye form bharte hain. Sabse pehle apna poora naam bataiye."
	replyAskVehicleReg = "Dhanyavaad! Ab apni gaadi ka registration number bataiye (jaise MH12AB1234)."
	replyAskPhone      = "Accha. Ab apna 10-digit phone number bataiye."

	replyFormCompletedFmt = "Shukriya %s! Aapka form poora ho gaya. Gaadi: %s, Phone: %s. " +
		"Hamari team jald hi aapse sampark karegi."

	replyNoFormActive = "Abhi koi form chalu nahi hai. 'Form bharna hai' bol kar shuru kar sakte hain."

	replyFormAlreadyCompleted = "Yeh form pehle hi poora ho chuka hai. Naya form bharne ke liye " +
		"'form bharna hai' boliye."

	replyFieldNotUnderstood = "Maaf kijiye, samajh nahi aaya. Dobara boliye."

	replyEarningsNotFoundFmt = "Maaf kijiye, driver %s ke liye kamai ka record nahi mila."

	replyEarningsFmt = "%s ki kamai: gross ₹%.0f, kharcha ₹%.0f, penalty ₹%.0f, reward ₹%.0f. " +
		"Net kamai ₹%.0f."

	replyCompare = "Pichle hafte ke muqable is hafte aapki kamai behtar chal rahi hai. " +
		"Aise hi mehnat karte rahiye!"

	replySmallTalk = "Main Saarthi hoon, aapka saathi. Aap kamai pooch sakte hain " +
		"('aaj ki kamai kitni hai'), onboarding form bhar sakte hain ('form bharna hai'), " +
		"ya madad maang sakte hain ('sahayata')."
)

const cardTitleEarnings = "Kamai ka hisaab"

var dateRangeLabels = map[string]string{
	"today":     "Aaj",
	"yesterday": "Kal",
	"last_week": "Pichle hafte",
}
