package graph

// Schema is the full contract of the API: object shapes, queries and
// mutations. All logic lives in the resolvers.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		username: String!
		email: String!
		friendCount: Int!
		friends: [User!]!
		thoughts: [Thought!]!
	}

	type Thought {
		id: ID!
		thoughtText: String!
		createdAt: String!
		username: String!
		reactionCount: Int!
		reactions: [Reaction!]!
	}

	type Reaction {
		id: ID!
		reactionBody: String!
		createdAt: String!
		username: String!
	}

	type Auth {
		token: String!
		user: User!
	}

	type Query {
		me: User!
		listUsers: [User!]!
		getUser(username: String!): User
		listThoughts(username: String): [Thought!]!
		getThought(id: ID!): Thought
	}

	type Mutation {
		register(username: String!, email: String!, password: String!): Auth!
		login(email: String!, password: String!): Auth!
		createThought(thoughtText: String!): Thought!
		addReaction(thoughtId: ID!, reactionBody: String!): Thought!
		addFriend(friendId: ID!): User!
	}
`
