// Package sampledata holds the quotes used to seed an empty store and to
// reset repositories in tests.
package sampledata

import "github.com/jsamuelsen/quote-service/internal/domain"

// Quotes returns a fresh copy of the sample quotes, in the order they are
// loaded. Ids are assigned by the store, so the first entry becomes id 1.
func Quotes() []domain.QuoteData {
	out := make([]domain.QuoteData, len(quotes))
	for i, q := range quotes {
		out[i] = domain.QuoteData{
			Text:         q.Text,
			AttributedTo: q.AttributedTo,
			Subjects:     domain.CloneSubjects(q.Subjects),
		}
	}

	return out
}

var quotes = []domain.QuoteData{
	{
		Text:         "If you can learn how to use your mind, anything is possible.",
		AttributedTo: "Wim Hof",
		Subjects:     []string{"inner strength"},
	},
	{
		Text:         "I'm not afraid of dying. I'm afraid not to have lived.",
		AttributedTo: "Wim Hof",
		Subjects:     []string{"inner strength"},
	},
	{
		Text:         "I've come to understand that if you want to learn something badly enough,\n" +
			"you'll find a way to make it happen.\n" +
			"Having the will to search and succeed is very important",
		AttributedTo: "Wim Hof",
		Subjects:     []string{"inner strength"},
	},
	{
		Text:         "In nature, it is not only the physically weak but the mentally weak that get eaten.\n" +
			"Now we have created this modern society in which we have every comfort,\n" +
			"yet we are losing our ability to regulate our mood, our emotions.",
		AttributedTo: "Wim Hof",
		Subjects:     []string{"inner strength"},
	},
	{
		Text:         "Cold is a stressor, so if you are able to get into the cold and control your body's response to it,\n" +
			"you will be able to control stress.",
		AttributedTo: "Wim Hof",
		Subjects:     []string{"inner strength"},
	},
	{
		Text:         "Justifying conscription to promote the cause of liberty is one of the most bizarre notions ever conceived by man!\n" +
			"Forced servitude, with the risk of death and serious injury as a price to live free, makes no sense.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty"},
	},
	{
		Text:         "When the federal government spends more each year than it collects in tax revenues,\n" +
			"it has three choices: It can raise taxes, print money, or borrow money.\n" +
			"While these actions may benefit politicians, all three options are bad for average Americans.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty"},
	},
	{
		Text:         "Well, I don't think we should go to the moon.\n" +
			"I think we maybe should send some politicians up there.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"politics"},
	},
	{
		Text:         "I think a submarine is a very worthwhile weapon.\n" +
			"I believe we can defend ourselves with submarines and all our troops back at home.\n" +
			"This whole idea that we have to be in 130 countries and 900 bases...\n" +
			"is an old-fashioned idea.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty"},
	},
	{
		Text:         "Of course I've already taken a very modest position on the monetary system,\n" +
			"I do take the position that we should just end the Fed.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty", "financial system"},
	},
	{
		Text:         "Legitimate use of violence can only be that which is required in self-defense.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"defense"},
	},
	{
		Text:         "I am absolutely opposed to a national ID card.\n" +
			"This is a total contradiction of what a free society is all about.\n" +
			"The purpose of government is to protect the secrecy and the privacy of all individuals,\n" +
			"not the secrecy of government. We don't need a national ID card.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty"},
	},
	{
		Text:         "Maybe we ought to consider a Golden Rule in foreign policy:\n" +
			"Don't do to other nations what we don't want happening to us.\n" +
			"We endlessly bomb these countries and then we wonder why they get upset with us?",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty", "peace"},
	},
	{
		Text:         "I am just absolutely convinced that the best formula for giving us peace and\n" +
			"preserving the American way of life is freedom, limited government,\n" +
			"and minding our own business overseas.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty", "peace"},
	},
	{
		Text:         "Real patriotism is a willingness to challenge the government when it's wrong.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"patriotism", "liberty"},
	},
	{
		Text:         "Believe me, the intellectual revolution is going on,\n" +
			"and that has to come first before you see the political changes.\n" +
			"That's where I'm very optimistic.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"politics"},
	},
	{
		Text:         "War is never economically beneficial except for those in position to profit from war expenditures.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"war", "profit"},
	},
	{
		Text:         "There is only one kind of freedom and that's individual liberty.\n" +
			"Our lives come from our creator and our liberty comes from our creator.\n" +
			"It has nothing to do with government granting it.",
		AttributedTo: "Ron Paul",
		Subjects:     []string{"liberty"},
	},
	{
		Text:         "Genius is patience",
		AttributedTo: "Isaac Newton",
		Subjects:     []string{"genius"},
	},
	{
		Text:         "Atheism is so senseless.\n" +
			"When I look at the solar system,\n" +
			"I see the earth at the right distance from the sun to receive the proper amounts of heat and light.\n" +
			"This did not happen by chance.",
		AttributedTo: "Isaac Newton",
		Subjects:     []string{"faith"},
	},
	{
		Text:         "If I have seen further than others, it is by standing upon the shoulders of giants.",
		AttributedTo: "Isaac Newton",
		Subjects:     []string{"achievements"},
	},
	{
		Text:         "WAR is a racket.\n" +
			"It always has been.\n" +
			"It is possibly the oldest, easily the most profitable, surely the most vicious.\n" +
			"It is the only one international in scope.\n" +
			"It is the only one in which the profits are reckoned in dollars and the losses in lives.",
		AttributedTo: "Smedley Butler",
		Subjects:     []string{"war"},
	},
	{
		Text:         "I spent thirty-three years and four months in active military service as a member of this country's most agile military force,\n" +
			"the Marine Corps.\n" +
			"I served in all commissioned ranks from Second Lieutenant to Major-General.\n" +
			"And during that period, I spent most of my time being a high class muscle-man for Big Business, for Wall Street and for the Bankers.\n" +
			"In short, I was a racketeer, a gangster for capitalism.",
		AttributedTo: "Smedley Butler",
		Subjects:     []string{"war", "conquest", "racket"},
	},
	{
		Text:         "Only those who would be called upon to risk their lives for their country should have the privilege of voting\n" +
			"to determine whether the nation should go to war.",
		AttributedTo: "Smedley Butler",
		Subjects:     []string{"war"},
	},
	{
		Text:         "The illegal we do immediately; the unconstitutional takes a little longer.",
		AttributedTo: "Henry Kissinger",
		Subjects:     []string{"corrupt government"},
	},
	{
		Text:         "Military men are dumb, stupid animals to be used as pawns for foreign policy.",
		AttributedTo: "Henry Kissinger",
		Subjects:     []string{"corrupt government", "hubris"},
	},
	{
		Text:         "Every now and again the United States has to pick up a crappy little country and throw it against a wall\n" +
			"just to prove we are serious.",
		AttributedTo: "Michael Ledeen",
		Subjects:     []string{"war", "hubris"},
	},
	{
		Text:         "We now have the technology to bring ET home.",
		AttributedTo: "Ben Rich",
		Subjects:     []string{"hidden knowledge"},
	},
	{
		Text:         "If you want to find the secrets of the universe, think in terms of energy, frequency and vibration.",
		AttributedTo: "Nikola Tesla",
		Subjects:     []string{"hidden knowledge"},
	},
	{
		Text:         "The day science begins to study non-physical phenomena,\n" +
			"it will make more progress in one decade than in all the previous centuries of its existence.",
		AttributedTo: "Nikola Tesla",
		Subjects:     []string{"hidden knowledge"},
	},
}
