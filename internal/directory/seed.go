// ABOUTME: Fixture data for the teammate directory
// ABOUTME: Seed returns a fresh copy of the built-in skills, users and messages

package directory

import (
	"time"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// Seed returns a fresh copy of the built-in fixture directory.
// Message timestamps carry no zone in the fixture and are read as UTC.
func Seed() *Directory {
	skills := []models.Skill{
		{ID: "1", Name: "React", Category: models.CategoryFrontend},
		{ID: "2", Name: "TypeScript", Category: models.CategoryFrontend},
		{ID: "3", Name: "Node.js", Category: models.CategoryBackend},
		{ID: "4", Name: "Python", Category: models.CategoryBackend},
		{ID: "5", Name: "UI/UX Design", Category: models.CategoryDesign},
		{ID: "6", Name: "Figma", Category: models.CategoryDesign},
		{ID: "7", Name: "GraphQL", Category: models.CategoryBackend},
		{ID: "8", Name: "MongoDB", Category: models.CategoryBackend},
		{ID: "9", Name: "AWS", Category: models.CategoryDevOps},
		{ID: "10", Name: "Docker", Category: models.CategoryDevOps},
		{ID: "11", Name: "React Native", Category: models.CategoryMobile},
		{ID: "12", Name: "Flutter", Category: models.CategoryMobile},
		{ID: "13", Name: "Machine Learning", Category: models.CategoryAI},
		{ID: "14", Name: "TensorFlow", Category: models.CategoryAI},
		{ID: "15", Name: "Solidity", Category: models.CategoryBlockchain},
		{ID: "16", Name: "Web3.js", Category: models.CategoryBlockchain},
		{ID: "17", Name: "Kubernetes", Category: models.CategoryDevOps},
		{ID: "18", Name: "Swift", Category: models.CategoryMobile},
		{ID: "19", Name: "Kotlin", Category: models.CategoryMobile},
		{ID: "20", Name: "Vue.js", Category: models.CategoryFrontend},
		{ID: "21", Name: "Angular", Category: models.CategoryFrontend},
		{ID: "22", Name: "Django", Category: models.CategoryBackend},
		{ID: "23", Name: "Flask", Category: models.CategoryBackend},
		{ID: "24", Name: "Firebase", Category: models.CategoryBackend},
		{ID: "25", Name: "Product Management", Category: models.CategoryOther},
	}

	hackathons := []models.Hackathon{
		{ID: "1", Name: "ETHGlobal London", Location: "London, UK", StartDate: models.MustDate("2025-05-15"), EndDate: models.MustDate("2025-05-17")},
		{ID: "2", Name: "Solana Hacker House", Location: "Berlin, Germany", StartDate: models.MustDate("2025-06-10"), EndDate: models.MustDate("2025-06-12")},
		{ID: "3", Name: "HackFS", Location: models.Online, StartDate: models.MustDate("2025-07-01"), EndDate: models.MustDate("2025-07-30"), IsOnline: true},
		{ID: "4", Name: "Devpost AI Hackathon", Location: models.Online, StartDate: models.MustDate("2025-06-01"), EndDate: models.MustDate("2025-06-30"), IsOnline: true},
		{ID: "5", Name: "ETHDenver", Location: "Denver, USA", StartDate: models.MustDate("2026-02-01"), EndDate: models.MustDate("2026-02-05")},
		{ID: "6", Name: "Web3 Jam", Location: "Paris, France", StartDate: models.MustDate("2025-09-15"), EndDate: models.MustDate("2025-09-17")},
		{ID: "7", Name: "HackTech", Location: "San Francisco, USA", StartDate: models.MustDate("2025-08-10"), EndDate: models.MustDate("2025-08-12")},
	}

	sk := func(idx ...int) []models.Skill {
		out := make([]models.Skill, len(idx))
		for i, n := range idx {
			out[i] = skills[n]
		}
		return out
	}
	hk := func(idx ...int) []models.Hackathon {
		out := make([]models.Hackathon, len(idx))
		for i, n := range idx {
			out[i] = hackathons[n]
		}
		return out
	}

	users := []models.User{
		{
			ID: "1", Name: "Alex Johnson", Avatar: "/avatars/alex.jpg", Location: "London, UK",
			Bio:    "Full-stack developer with 3+ years of experience. Passionate about blockchain and web3 technologies.",
			Skills: sk(0, 1, 2, 6), Hackathons: hk(0, 2), Available: true,
		},
		{
			ID: "2", Name: "Sofia Rodriguez", Avatar: "/avatars/sofia.jpg", Location: "Berlin, Germany",
			Bio:    "UX/UI designer specializing in user research and product design. Looking for frontend and backend teammates.",
			Skills: sk(4, 5, 0), Hackathons: hk(1, 3), Available: true,
		},
		{
			ID: "3", Name: "Marcus Chen", Avatar: "/avatars/marcus.jpg", Location: models.Online,
			Bio:    "Backend engineer with expertise in distributed systems. Currently exploring AI integration in web apps.",
			Skills: sk(2, 3, 7, 12), Hackathons: hk(2, 3), Available: false,
		},
		{
			ID: "4", Name: "Jasmine Patel", Avatar: "/avatars/jasmine.jpg", Location: "New York, USA",
			Bio:    "Mobile developer focusing on cross-platform solutions. Interested in fintech and health tech hackathons.",
			Skills: sk(10, 11, 17, 18), Hackathons: hk(6), Available: true,
		},
		{
			ID: "5", Name: "Liam Wilson", Avatar: "/avatars/liam.jpg", Location: "San Francisco, USA",
			Bio:    "AI researcher and developer. Looking for design and frontend teammates for AI hackathons.",
			Skills: sk(12, 13, 3), Hackathons: hk(3, 6), Available: true,
		},
		{
			ID: "6", Name: "Emma Davis", Avatar: "/avatars/emma.jpg", Location: "Paris, France",
			Bio:    "Blockchain developer specializing in smart contracts. Excited about DeFi and NFT projects.",
			Skills: sk(14, 15, 1), Hackathons: hk(0, 5), Available: true,
		},
		{
			ID: "7", Name: "Raj Patel", Avatar: "/avatars/raj.jpg", Location: "Mumbai, India",
			Bio:    "DevOps engineer with cloud expertise. Interested in scaling solutions and infrastructure as code.",
			Skills: sk(8, 9, 16), Hackathons: hk(2, 3), Available: false,
		},
		{
			ID: "8", Name: "Olivia Brown", Avatar: "/avatars/olivia.jpg", Location: "Toronto, Canada",
			Bio:    "Frontend developer with a focus on accessibility and performance. Looking for backend teammates.",
			Skills: sk(0, 19, 1), Hackathons: hk(3, 6), Available: true,
		},
		{
			ID: "9", Name: "Daniel Kim", Avatar: "/avatars/daniel.jpg", Location: "Seoul, South Korea",
			Bio:    "Full-stack developer interested in gaming and AR/VR. Seeking design and mobile teammates.",
			Skills: sk(0, 2, 20, 21), Hackathons: hk(4, 6), Available: true,
		},
		{
			ID: "10", Name: "Nadia Ali", Avatar: "/avatars/nadia.jpg", Location: "Dubai, UAE",
			Bio:    "Product manager with technical background. Passionate about fintech and solving real-world problems.",
			Skills: sk(24, 4, 1), Hackathons: hk(0, 5), Available: true,
		},
		{
			ID: "11", Name: "Carlos Mendoza", Avatar: "/avatars/carlos.jpg", Location: "Mexico City, Mexico",
			Bio:    "Backend developer specializing in serverless and microservices. Looking for frontend and design collaborators.",
			Skills: sk(2, 22, 23, 7), Hackathons: hk(3, 6), Available: true,
		},
		{
			ID: "12", Name: "Ava Williams", Avatar: "/avatars/ava.jpg", Location: "Sydney, Australia",
			Bio:    "Mobile app developer with iOS expertise. Interested in health tech and sustainability hackathons.",
			Skills: sk(17, 10, 8, 23), Hackathons: hk(2, 3), Available: true,
		},
	}

	messages := []models.Message{
		{ID: "1", SenderID: "1", ReceiverID: "2", Timestamp: fixtureTime("2025-04-15T10:30:00"), Read: true,
			Content: "Hi Sofia! I saw you're participating in the ETHGlobal London hackathon. Would you be interested in teaming up?"},
		{ID: "2", SenderID: "2", ReceiverID: "1", Timestamp: fixtureTime("2025-04-15T10:45:00"), Read: true,
			Content: "Hey Alex! Yes, I'm looking for a team. I'm a UX/UI designer and could use a good frontend developer. What's your idea?"},
		{ID: "3", SenderID: "1", ReceiverID: "2", Timestamp: fixtureTime("2025-04-15T11:00:00"), Read: true,
			Content: "I'm thinking about building a decentralized marketplace for freelancers. I can handle the frontend and smart contracts, but I need help with the UX design."},
		{ID: "4", SenderID: "3", ReceiverID: "5", Timestamp: fixtureTime("2025-04-16T09:15:00"), Read: false,
			Content: "Hello Liam, I noticed you're skilled in AI and looking for hackathon teammates. I'm a backend engineer with some AI experience too."},
		{ID: "5", SenderID: "7", ReceiverID: "11", Timestamp: fixtureTime("2025-04-17T14:20:00"), Read: false,
			Content: "Hi Carlos, I'm interested in joining your team for the Devpost AI Hackathon. I have experience with cloud infrastructure that could be useful."},
	}

	last := func(i int) *models.Message {
		m := messages[i]
		return &m
	}

	conversations := []models.Conversation{
		{ID: "1", Participants: []string{"1", "2"}, LastMessage: last(2), UnreadCount: 0},
		{ID: "2", Participants: []string{"3", "5"}, LastMessage: last(3), UnreadCount: 1},
		{ID: "3", Participants: []string{"7", "11"}, LastMessage: last(4), UnreadCount: 1},
	}

	return &Directory{
		Skills:        skills,
		Hackathons:    hackathons,
		Users:         users,
		Messages:      messages,
		Conversations: conversations,
	}
}

func fixtureTime(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
