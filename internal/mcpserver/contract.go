package mcpserver

// ContentSchemaContract describes the record shapes LLM consumers must
// follow when creating or updating content records.
const ContentSchemaContract = `# Folio Content Schema

Every record passed to create_record or update_record MUST follow the
shape of its collection. Records are JSON objects; fields not listed
here are stored but never served, so stick to the schema.

## Shared fields

All collections carry these server-managed fields. Never set them in
create_record: id is assigned by the server, isActive starts true
(archive_record flips it), and order is adjusted by move_record.

- id (string, UUID)
- isActive (bool) — false means archived
- order (int) — display position, lower first

## education

- institution (string, REQUIRED)
- level (string, REQUIRED) — e.g. "Bachelor's Degree"
- fieldOfStudy (string, REQUIRED)
- startDate (string, REQUIRED, 4-digit year, e.g. "2018")
- endDate (string, REQUIRED, 4-digit year)
- grade, location, description, certificateURL (string, optional)

## experiences

- title (string, REQUIRED)
- organization (string, REQUIRED)
- type (string, REQUIRED) — one of: work, internship, organization, teaching
- startDate (string, REQUIRED, YYYY-MM-DD)
- endDate (string, YYYY-MM-DD; omit and set isCurrent for an ongoing role)
- isCurrent (bool)
- description (string, REQUIRED)
- skills (comma-separated string, e.g. "Go, SQL"; a JSON list also
  works — tools always render the comma-separated form)
- location, logoURL (string, optional)

## certifications

- name (string, REQUIRED)
- issuer (string, REQUIRED)
- issueDate (string, REQUIRED, YYYY-MM-DD)
- expiryDate (string, YYYY-MM-DD; omit when the credential never expires)
- credentialID, credentialURL, description, certificateImageURL (string, optional)

## skills

- name (string, REQUIRED)
- level (string, REQUIRED) — one of: Beginner, Intermediate, Advanced, Expert
- description (string, optional)

## projects

- title (string, REQUIRED)
- description (string, REQUIRED)
- category (string, optional) — used for portfolio filtering
- imageURL (string, optional) — /uploads path or CDN URL; use upload_asset
- projectURL, githubURL (string, optional)
- tags (comma-separated string or JSON list, optional)
- completedDate (string, optional)

## whatImDoing

- name (string, REQUIRED)
- icon (string, REQUIRED) — one of: Code, Database, Palette, Globe,
  Server, Smartphone, Layout, GitBranch, Zap, Settings, BookOpen, Brain.
  Unknown names render as Code.
- description (string, REQUIRED)

## Profile (get_profile)

The profile is a singleton, not a collection. It holds name, title, bio,
email, phone, location, photoURL and social links. It is read-only
through MCP.

## Contact messages (list_messages)

Visitor inquiries are append-only: they arrive through the public
contact form and can only be read here, never edited or deleted.
`
