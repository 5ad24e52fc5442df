package screen

import "github.com/eclipsereads/eclipse/internal/nav"

// Onboarding introduces the app.
type Onboarding struct {
	base
}

// NewOnboarding creates the onboarding screen.
func NewOnboarding(env Env) *Onboarding {
	return &Onboarding{base: newBase(nav.ScreenOnboarding, "Welcome", env)}
}

func onboardingCard(title, description, icon string) Node {
	return Node{Kind: KindCard, Text: title, Detail: description, Image: icon}
}

// Compose renders the welcome cards.
func (s *Onboarding) Compose() Node {
	return column(
		heading("Welcome to Eclipse"),
		onboardingCard("Personalized Recommendations",
			"Discover tailored suggestions based on your preferences and interests.", "star.fill"),
		onboardingCard("Rent from Near You",
			"You can now rent all your favorite books from those who live less than 5km from you.", "house.fill"),
		button(TargetGetStarted, "Get Started >>>"),
	)
}

// Handle applies ev.
func (s *Onboarding) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	if ev.Kind == EventTap && ev.Target == TargetGetStarted {
		return Effect{Route: nav.ScreenLogin}
	}
	return Effect{}
}
